package traffic

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

// TodoUpdate lists the fields a todo owner may change.
type TodoUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	IsCompleted *bool
}

func (t *Traffic) createTodo(userID uint, input *models.TodoItem) (*models.TodoItem, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrafficCore,
		zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryTodo),
	)

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now().AddDate(0, 0, 7)
	}

	todo := models.TodoItem{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		IsCompleted: input.IsCompleted,
	}

	if err := t.Db.Conn.Create(&todo).Error; err != nil {
		return nil, err
	}

	logger.Info("Created todo", zap.Uint("user_id", userID), zap.Uint("todo_id", todo.ID))

	return &todo, nil
}

func (t *Traffic) listTodos(userID uint) ([]models.TodoItem, error) {
	var todos []models.TodoItem
	err := t.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&todos).Error
	return todos, err
}

func (t *Traffic) getTodo(userID, todoID uint) (*models.TodoItem, error) {
	var todo models.TodoItem
	err := t.Db.Conn.
		Where("id = ? AND user_id = ?", todoID, userID).
		First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (t *Traffic) updateTodo(userID, todoID uint, input *TodoUpdate) (*models.TodoItem, error) {
	todo, err := t.getTodo(userID, todoID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
	}
	if input.IsCompleted != nil {
		updates["is_completed"] = *input.IsCompleted
	}

	if len(updates) > 0 {
		if err := t.Db.Conn.Model(todo).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return todo, nil
}

func (t *Traffic) deleteTodo(userID, todoID uint) error {
	todo, err := t.getTodo(userID, todoID)
	if err != nil {
		return err
	}
	return t.Db.Conn.Delete(todo).Error
}

type ITodoImpl struct {
	traffic *Traffic
}

func (it *ITodoImpl) CreateTodo(userID uint, input *models.TodoItem) (*models.TodoItem, error) {
	return it.traffic.createTodo(userID, input)
}

func (it *ITodoImpl) ListTodos(userID uint) ([]models.TodoItem, error) {
	return it.traffic.listTodos(userID)
}

func (it *ITodoImpl) GetTodo(userID, todoID uint) (*models.TodoItem, error) {
	return it.traffic.getTodo(userID, todoID)
}

func (it *ITodoImpl) UpdateTodo(userID, todoID uint, input *TodoUpdate) (*models.TodoItem, error) {
	return it.traffic.updateTodo(userID, todoID, input)
}

func (it *ITodoImpl) DeleteTodo(userID, todoID uint) error {
	return it.traffic.deleteTodo(userID, todoID)
}

func (t *Traffic) GetITodo() ITodo {
	return &ITodoImpl{traffic: t}
}
