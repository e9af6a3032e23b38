package utils

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"priceai_back_end/internal/database"
	"priceai_back_end/internal/models"
)

// Actions d'audit prédéfinies
const (
	ACTION_USER_BAN      = "user.ban"
	ACTION_ACTIVITY_VIEW = "user.activity_view"

	RESOURCE_USER = "user"
)

// LogAction enregistre une action d'administration dans les logs d'audit
func LogAction(c *gin.Context, action, resource, resourceID string) {
	logAsync(c, action, resource, resourceID, true, "")
}

// LogFailedAction enregistre une action d'administration échouée
func LogFailedAction(c *gin.Context, action, resource, resourceID, errorMsg string) {
	logAsync(c, action, resource, resourceID, false, errorMsg)
}

func logAsync(c *gin.Context, action, resource, resourceID string, success bool, errorMsg string) {
	entry := models.AuditLog{
		ID:         gocql.TimeUUID(),
		UserID:     c.GetString("user_id"),
		UserEmail:  c.GetString("email"),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
		Success:    success,
		ErrorMsg:   errorMsg,
		Timestamp:  time.Now(),
		SessionID:  c.GetHeader("X-Session-ID"),
	}

	go func() {
		if err := writeAuditLog(entry); err != nil {
			log.Printf("❌ Erreur enregistrement log audit: %v", err)
		}
	}()
}

func writeAuditLog(entry models.AuditLog) error {
	usersSession, err := database.GetUsersSession()
	if err != nil {
		// Mode démo sans ScyllaDB : trace locale uniquement
		log.Printf("🔎 Audit (%s %s/%s par %s, succès=%v)",
			entry.Action, entry.Resource, entry.ResourceID, entry.UserID, entry.Success)
		return nil
	}

	query := `
		INSERT INTO audit_logs (
			id, user_id, user_email, action, resource, resource_id,
			ip_address, user_agent, success, error_msg, timestamp, session_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	return usersSession.Query(query,
		entry.ID, entry.UserID, entry.UserEmail, entry.Action,
		entry.Resource, entry.ResourceID, entry.IPAddress, entry.UserAgent,
		entry.Success, entry.ErrorMsg, entry.Timestamp, entry.SessionID,
	).Exec()
}
