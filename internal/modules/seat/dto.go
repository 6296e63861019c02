package seat

type SeatInput struct {
	Row    string `json:"row" binding:"required,max=5"`
	Number int    `json:"number" binding:"required,gt=0"`
	Type   string `json:"type"`
}

type CreateSeatsRequest struct {
	RoomID int64       `json:"room_id" binding:"required"`
	Seats  []SeatInput `json:"seats" binding:"required,min=1,dive"`
}

type UpdateSeatRequest struct {
	Row    *string `json:"row"`
	Number *int    `json:"number"`
	Type   *string `json:"type"`
}
