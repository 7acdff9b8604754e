package repository

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePostRequest struct {
	Text        string  `json:"text"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Lang        string  `json:"lang"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	LocationURL string  `json:"locationUrl"`
	ImgData     []byte  `json:"-"`
}

// UpdatePostRequest - частичное обновление, nil-поле означает "не менять"
type UpdatePostRequest struct {
	PostID      string   `json:"postId"`
	Text        *string  `json:"text"`
	Title       *string  `json:"title"`
	Type        *string  `json:"type"`
	Lang        *string  `json:"lang"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	LocationURL *string  `json:"locationUrl"`
	ImgData     []byte   `json:"-"`
}
