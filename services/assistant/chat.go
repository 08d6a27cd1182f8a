package assistant

import (
	"context"
	"fmt"

	"turnera/models"
	"turnera/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	replyMaxNewTokens = 350
	replyTemperature  = 0.2
)

// BuildPrompt joins the system template and the user message into the
// single prompt sent to the inference endpoint.
func BuildPrompt(template, message string) string {
	return fmt.Sprintf("%s\nUsuario: %s\nAsistente:", template, message)
}

// GenerateReply forwards the user message to the inference endpoint and
// returns the raw completion. The model output is never parsed into
// actions; booking and payment operations are invoked explicitly by the
// caller. Transcript writes are best-effort and never fail the reply.
func (s *DefaultAssistantService) GenerateReply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	prompt := BuildPrompt(s.SystemPrompt, req.Message)
	answer, err := s.Inference.Generate(ctx, prompt, replyMaxNewTokens, replyTemperature)
	if err != nil {
		return nil, err
	}

	if s.History != nil {
		logger := utils.GetLogger()
		if err := s.History.Append(ctx, sessionID, models.ChatMessage{Role: models.RoleUser, Text: req.Message, At: s.now()}); err != nil {
			logger.Warn("failed to record user message", zap.String("session", sessionID), zap.Error(err))
		}
		if err := s.History.Append(ctx, sessionID, models.ChatMessage{Role: models.RoleAssistant, Text: answer, At: s.now()}); err != nil {
			logger.Warn("failed to record assistant message", zap.String("session", sessionID), zap.Error(err))
		}
	}

	return &models.ChatResponse{Answer: answer, SessionID: sessionID}, nil
}

// GetHistory returns the transcript for one session.
func (s *DefaultAssistantService) GetHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if s.History == nil {
		return nil, nil
	}
	return s.History.Get(ctx, sessionID)
}
