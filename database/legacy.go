package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chamba_backend/internal/logger"
	"chamba_backend/internal/models"
)

// LinkLegacySuggestions is a one-time backfill for pending category
// suggestions created before suggestions were linked to projects at
// creation time. Each unlinked suggestion is attached to its
// suggester's most recent project still carrying a pending category
// placeholder. Linked rows are left alone, so reruns are no-ops.
func LinkLegacySuggestions(db *gorm.DB) error {
	var pending []models.Category
	err := db.Where("status = ? AND related_project_id IS NULL AND suggested_by IS NOT NULL",
		models.CategoryStatusPending).
		Find(&pending).Error
	if err != nil {
		return fmt.Errorf("list unlinked suggestions: %w", err)
	}

	linked := 0
	for _, category := range pending {
		var project models.Project
		err := db.Where("employer_id = ? AND suggested_category_name IS NOT NULL", *category.SuggestedBy).
			Order("created_at DESC").
			First(&project).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("find project for suggestion %s: %w", category.ID, err)
		}

		err = db.Model(&models.Category{}).
			Where("id = ?", category.ID).
			Update("related_project_id", project.ID).Error
		if err != nil {
			return fmt.Errorf("link suggestion %s: %w", category.ID, err)
		}
		linked++
	}

	if linked > 0 {
		logger.Info("legacy suggestions linked to projects", "count", linked)
	}
	return nil
}
