package services

import (
	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/utils"
)

// IssueToken creates a signed token identifying the member for subsequent
// requests. The token is pure identification; login performs no credential
// check.
func IssueToken(m models.Member, expireHours int) (string, error) {
	return utils.GenerateToken(m.ID, m.Name, string(m.Role), expireHours)
}
