package lessonController

import (
	"log"

	"eduplay/database"
	"eduplay/middleware"
	"eduplay/models"
	"eduplay/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson creates a new lesson inside an existing module
func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*struct {
		ModuleID   *uint   `json:"module_id"`
		Title      string  `json:"title"`
		Content    string  `json:"content"`
		VideoURL   *string `json:"video_url"`
		LessonType string  `json:"lesson_type"`
		OrderIndex *int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if module exists
	var module models.Module
	if err := database.Database.Db.First(&module, *reqData.ModuleID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module_id!", nil)
		}
		log.Printf("Failed to check module %d: %v", *reqData.ModuleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	orderIndex := 1
	if reqData.OrderIndex != nil {
		orderIndex = *reqData.OrderIndex
	}

	lesson := models.Lesson{
		ModuleID:   *reqData.ModuleID,
		Title:      reqData.Title,
		Content:    reqData.Content,
		VideoURL:   reqData.VideoURL,
		LessonType: reqData.LessonType,
		OrderIndex: orderIndex,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		switch database.TranslateError(err) {
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module_id!", nil)
		default:
			log.Printf("Failed to create lesson: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
		}
	}

	// Tell enrolled learners about the new content, best effort
	go utils.NotifyCourseUpdate(lesson)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// ListLessons lists lessons, optionally filtered by module_id, newest first
func ListLessons(c *fiber.Ctx) error {
	db := database.Database.Db
	if moduleID, ok := c.Locals("moduleIDFilter").(int); ok {
		db = db.Where("module_id = ?", moduleID)
	}

	var lessons []models.Lesson
	if err := db.Order("created_at desc, id desc").Find(&lessons).Error; err != nil {
		log.Printf("Failed to fetch lessons: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// GetLesson returns a single lesson by id
func GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Failed to fetch lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// UpdateLesson applies a partial update; the write only touches
// supplied columns so concurrent partial updates cannot clobber
// each other's fields.
func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		ModuleID   *uint   `json:"module_id"`
		Title      *string `json:"title"`
		Content    *string `json:"content"`
		VideoURL   *string `json:"video_url"`
		LessonType *string `json:"lesson_type"`
		OrderIndex *int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Failed to fetch lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	// A new module must exist before the lesson can move into it
	if reqData.ModuleID != nil {
		var module models.Module
		if err := database.Database.Db.First(&module, *reqData.ModuleID).Error; err != nil {
			if database.TranslateError(err) == database.ErrKindNotFound {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module_id!", nil)
			}
			log.Printf("Failed to check module %d: %v", *reqData.ModuleID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
		}
	}

	updates := make(map[string]interface{})
	if reqData.ModuleID != nil {
		updates["module_id"] = *reqData.ModuleID
	}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.VideoURL != nil {
		updates["video_url"] = *reqData.VideoURL
	}
	if reqData.LessonType != nil {
		updates["lesson_type"] = *reqData.LessonType
	}
	if reqData.OrderIndex != nil {
		updates["order_index"] = *reqData.OrderIndex
	}

	if err := database.Database.Db.Model(&lesson).Updates(updates).Error; err != nil {
		switch database.TranslateError(err) {
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module_id!", nil)
		default:
			log.Printf("Failed to update lesson %d: %v", lessonID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
		}
	}

	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		log.Printf("Failed to reload lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	// Changed content is worth a push as well, best effort
	go utils.NotifyCourseUpdate(lesson)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson unless other records still reference it
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	result := database.Database.Db.Delete(&models.Lesson{}, lessonID)
	if result.Error != nil {
		switch database.TranslateError(result.Error) {
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson is still referenced by other records!", nil)
		default:
			log.Printf("Failed to delete lesson %d: %v", lessonID, result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
		}
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
