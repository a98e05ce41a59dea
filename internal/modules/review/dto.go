package review

type CreateReviewRequest struct {
	EquipmentID int64  `json:"equipment_id" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"max=2000"`
}
