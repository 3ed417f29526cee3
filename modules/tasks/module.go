package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/example/task-api/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TasksModule provides task management services via GORM + SQLite.
type TasksModule struct {
	db      *gorm.DB
	service *TaskService
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*TasksModule)(nil)
var _ mono.ServiceProviderModule = (*TasksModule)(nil)
var _ mono.HealthCheckableModule = (*TasksModule)(nil)

// NewModule creates a new TasksModule.
func NewModule() *TasksModule {
	dbPath := os.Getenv("TASKS_DB_PATH")
	if dbPath == "" {
		dbPath = "tasks.db"
	}
	return &TasksModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TasksModule) Name() string {
	return "tasks"
}

// Start initializes the database connection and runs migrations.
func (m *TasksModule) Start(_ context.Context) error {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewTaskService(NewRepository(db))

	log.Printf("[tasks] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop gracefully closes the database connection.
func (m *TasksModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[tasks] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TasksModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TasksModule) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]func(mono.ServiceContainer) error{
		"create": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "create", json.Unmarshal, json.Marshal, m.handleCreate)
		},
		"get": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "get", json.Unmarshal, json.Marshal, m.handleGet)
		},
		"list": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "list", json.Unmarshal, json.Marshal, m.handleList)
		},
		"update": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "update", json.Unmarshal, json.Marshal, m.handleUpdate)
		},
		"delete": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "delete", json.Unmarshal, json.Marshal, m.handleDelete)
		},
		"start": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "start", json.Unmarshal, json.Marshal, m.handleStart)
		},
		"complete": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "complete", json.Unmarshal, json.Marshal, m.handleComplete)
		},
	}

	for name, register := range services {
		if err := register(container); err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[tasks] Registered services: create, get, list, update, delete, start, complete")
	return nil
}
