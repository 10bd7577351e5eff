package models

import "time"

const (
	ReservationConfirmed = "confirmed"
	ReservationCanceled  = "canceled"
	ReservationCompleted = "completed"
)

type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Guests    int       `gorm:"not null" json:"guests"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Table     int       `gorm:"column:table_number" json:"table"`
	Status    string    `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
