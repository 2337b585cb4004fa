package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirehub/backend/internal/models"
	"gorm.io/gorm"
)

// Context keys the middleware sets for downstream handlers.
const (
	CompanyKey = "company"
	UserIDKey  = "userID"
)

// ProtectCompany validates the company session token from the "token" header
// and loads the company record into the request context.
func ProtectCompany(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, login again",
			})
			return
		}

		claims, err := ParseCompanyToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, login again",
			})
			return
		}

		var company models.Company
		if err := db.First(&company, claims.CompanyID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Company not found",
			})
			return
		}

		c.Set(CompanyKey, &company)
		c.Next()
	}
}

// ProtectUser validates the identity provider bearer token and stores the
// external user id in the request context. The user record itself may not
// exist yet if the provisioning webhook is lagging; handlers deal with that.
func ProtectUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, login again",
			})
			return
		}

		userID, err := ParseIdentityToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, login again",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CompanyFromContext returns the company loaded by ProtectCompany.
func CompanyFromContext(c *gin.Context) *models.Company {
	v, ok := c.Get(CompanyKey)
	if !ok {
		return nil
	}
	company, _ := v.(*models.Company)
	return company
}

// UserIDFromContext returns the external user id set by ProtectUser.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
