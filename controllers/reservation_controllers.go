package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kajtekw/restaurant-manager/models"
	"github.com/kajtekw/restaurant-manager/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Guests int    `json:"guests" binding:"required,min=1"`
	Date   string `json:"date" binding:"required"`
	Table  int    `json:"table"`
	Status string `json:"status" binding:"omitempty,oneof=confirmed canceled completed"`
}

// parseSeatingTime accepts the ISO-like timestamp formats the client
// sends for the seating date.
func parseSeatingTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date format")
}

// CreateReservation books a seating. Status defaults to "confirmed"
// when the caller leaves it out.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := parseSeatingTime(req.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.ReservationConfirmed
	}

	reservation := models.Reservation{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Guests: req.Guests,
		Date:   date,
		Table:  req.Table,
		Status: status,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetReservations lists reservations ordered by seating time. With
// ?date=YYYY-MM-DD only seatings inside that day's half-open window
// [00:00, next day 00:00) are returned, interpreted in server-local time.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	tx := rc.DB.Order("date ASC")

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		// AddDate keeps the window aligned to midnight across DST days.
		tx = tx.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}

	var reservations []models.Reservation
	if err := tx.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservation overwrites all fields of an existing reservation.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := parseSeatingTime(req.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.ReservationConfirmed
	}

	reservation.Name = req.Name
	reservation.Phone = req.Phone
	reservation.Email = req.Email
	reservation.Guests = req.Guests
	reservation.Date = date
	reservation.Table = req.Table
	reservation.Status = status

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// CancelReservation sets status to canceled and touches nothing else.
// Canceling an already canceled reservation is a no-op, not an error.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	reservation.Status = models.ReservationCanceled
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation canceled", reservation)
}

// DeleteReservation removes a reservation. 404 on a missing id,
// matching update and cancel.
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
