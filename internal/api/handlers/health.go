package handlers

import (
	"log"
	"net/http"

	"github.com/dom/notes-website/internal/domain"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check runs a trivial query so the probe fails when the database is
// unreachable, not just when the process is up.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	var count int64
	if err := h.db.WithContext(r.Context()).Model(&domain.User{}).Count(&count).Error; err != nil {
		log.Printf("ERROR [HealthHandler.Check] database probe: %v", err)
		http.Error(w, "ERROR", http.StatusInternalServerError)
		return
	}
	w.Write([]byte("OK"))
}
