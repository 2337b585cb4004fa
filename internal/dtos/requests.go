package dtos

// CompanyRegisterRequest arrives as multipart form data together with the
// logo file, so it uses form tags instead of json.
type CompanyRegisterRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type CompanyLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Salary      int64  `json:"salary"`
}

type ChangeStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ChangeVisibilityRequest struct {
	ID uint `json:"id" binding:"required"`
}

type ApplyJobRequest struct {
	JobID uint `json:"jobId" binding:"required"`
}

// UpdateProfileRequest uses pointers so that only fields the client actually
// sent get written; an omitted field leaves the stored value alone.
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Location   *string `json:"location"`
	Skills     *string `json:"skills"`
	Experience *string `json:"experience"`
	Education  *string `json:"education"`
	Bio        *string `json:"bio"`
}
