package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Location - геоточка в формате GeoJSON, координаты в порядке [latitude, longitude]
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Image struct {
	ContentType string `json:"contentType"`
}

type Post struct {
	PostID         string    `json:"postId" db:"post_id"`
	Text           string    `json:"text" db:"text"`
	Title          string    `json:"title" db:"title"`
	Date           time.Time `json:"date" db:"date"`
	Type           string    `json:"type" db:"type"`
	Lang           string    `json:"lang" db:"lang"`
	Latitude       float64   `json:"-" db:"latitude"`
	Longitude      float64   `json:"-" db:"longitude"`
	LocationURL    string    `json:"locationUrl" db:"location_url"`
	ImgData        []byte    `json:"-" db:"img_data"`
	ImgContentType *string   `json:"-" db:"img_content_type"`
	Location       *Location `json:"location" db:"-"`
	Img            *Image    `json:"img" db:"-"`
}

// Hydrate collects the JSON-only fields from the flat DB columns
func (p *Post) Hydrate() {
	p.Location = &Location{
		Type:        "Point",
		Coordinates: []float64{p.Latitude, p.Longitude},
	}

	if p.ImgContentType != nil {
		p.Img = &Image{ContentType: *p.ImgContentType}
	}
}
