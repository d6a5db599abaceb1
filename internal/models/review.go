package models

import "time"

// Review is a customer product review. Reviews are created unapproved and
// stay invisible to public reads until an admin approves them.
type Review struct {
	ID         int       `db:"id" json:"id"`
	ProductID  int       `db:"product_id" json:"productId"`
	Name       string    `db:"name" json:"name"`
	Whatsapp   *string   `db:"whatsapp" json:"whatsapp,omitempty"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    string    `db:"comment" json:"comment"`
	IsApproved bool      `db:"is_approved" json:"isApproved"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`

	// ProductName is resolved via join for the admin moderation list; empty
	// when the referenced product no longer exists.
	ProductName *string `db:"product_name" json:"productName,omitempty"`
}
