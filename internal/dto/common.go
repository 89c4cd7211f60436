package dto

// PageParams holds limit/offset pagination parameters for list endpoints.
type PageParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
