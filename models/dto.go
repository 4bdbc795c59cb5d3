package models

type AddToCartRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"required,min=1"`
	Note      string `json:"note" form:"note"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required"`
}

type UpdateNoteRequest struct {
	Note string `json:"note" form:"note"`
}

type CreateCampaignRequest struct {
	Title              string `json:"title" form:"title" binding:"required"`
	Description        string `json:"description" form:"description" binding:"required"`
	Image              string `json:"image" form:"image" binding:"required"`
	ProductIDs         []int  `json:"productIds" form:"productIds" binding:"required,min=1"`
	DiscountPercentage int    `json:"discountPercentage" form:"discountPercentage" binding:"required,min=1,max=99"`
}

type AddReviewRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required"`
	Username  string `json:"username" form:"username" binding:"required"`
	Rating    int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title" form:"title"`
	Content   string `json:"content" form:"content" binding:"required"`
}
