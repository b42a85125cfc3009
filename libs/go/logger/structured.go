package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI          LogComponent = "api"
	ComponentRoles        LogComponent = "roles"
	ComponentOrchestrator LogComponent = "orchestrator"
	ComponentContract     LogComponent = "contract"
	ComponentSimulation   LogComponent = "simulation"
	ComponentMiddleware   LogComponent = "middleware"
	ComponentServer       LogComponent = "server"
	ComponentCLI          LogComponent = "cli"
)

// LogContext holds structured context information for logs
type LogContext struct {
	WalletAddress string
	CorrelationID string
	OperationID   string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides enhanced logging with structured context
type StructuredLogger struct {
	logger    *zap.Logger
	component LogComponent
	context   LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		logger:    Log,
		component: component,
		context:   LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl.clone()
	for k, v := range fields {
		newLogger.context.Fields[k] = v
	}
	return newLogger
}

// WithWallet adds the connected wallet address to the log context
func (sl *StructuredLogger) WithWallet(address string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.WalletAddress = address
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

// WithOperationID adds an orchestrator operation token to the log context
func (sl *StructuredLogger) WithOperationID(operationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.OperationID = operationID
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		newFields[k] = v
	}

	ctx := sl.context
	ctx.Fields = newFields
	return &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context:   ctx,
	}
}

func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0, 6+len(sl.context.Fields))

	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.WalletAddress != "" {
		fields = append(fields, zap.String("wallet", sl.context.WalletAddress))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.OperationID != "" {
		fields = append(fields, zap.String("operation_id", sl.context.OperationID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogTransactionEvent logs a transaction lifecycle transition
func (sl *StructuredLogger) LogTransactionEvent(operationID, kind, status, txHash string) {
	fields := map[string]interface{}{
		"operation_id": operationID,
		"kind":         kind,
		"status":       status,
	}
	if txHash != "" {
		fields["tx_hash"] = txHash
	}
	sl.WithFields(fields).Info("Transaction lifecycle event")
}

// LogRoleChange logs a mutation of the persisted role configuration
func (sl *StructuredLogger) LogRoleChange(action, address string) {
	sl.WithFields(map[string]interface{}{
		"action":  action,
		"address": address,
	}).Info("Role configuration changed")
}

// Timer helps measure operation duration
type Timer struct {
	start  time.Time
	logger *StructuredLogger
	name   string
}

// NewTimer creates a new timer for measuring operation duration
func (sl *StructuredLogger) NewTimer(operationName string) *Timer {
	return &Timer{
		start:  time.Now(),
		logger: sl,
		name:   operationName,
	}
}

// StopWithResult stops the timer and logs the result
func (t *Timer) StopWithResult(success bool, err error) {
	duration := time.Since(t.start)
	logger := t.logger.WithOperation(t.name).WithDuration(duration).WithField("success", success)

	if success {
		logger.Info(fmt.Sprintf("%s completed successfully", t.name))
	} else {
		logger.Error(fmt.Sprintf("%s failed", t.name), err)
	}
}
