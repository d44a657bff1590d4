package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// AddTask appends a checklist entry to the active session
func AddTask(text string) (*models.SessionTask, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("task text cannot be empty")
	}

	session, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	task := models.SessionTask{
		SessionID: session.ID,
		Text:      text,
	}
	if err := DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ToggleTask flips the completed flag on a checklist entry
func ToggleTask(taskID uint) (*models.SessionTask, error) {
	var task models.SessionTask
	if err := DB.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task #%d not found", taskID)
		}
		return nil, err
	}

	task.Completed = !task.Completed
	if err := DB.Save(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// GetSessionTasks returns the checklist of one session in creation order
func GetSessionTasks(sessionID uint) ([]models.SessionTask, error) {
	var tasks []models.SessionTask

	err := DB.Where("session_id = ?", sessionID).Order("id ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
