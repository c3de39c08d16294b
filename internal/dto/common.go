package dto

// ListQuery carries token-based pagination parameters from the query string.
type ListQuery struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}
