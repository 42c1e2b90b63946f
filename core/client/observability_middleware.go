package client

import (
	"context"
	"time"

	"github.com/leofalp/toolreason/providers/ai"
	"github.com/leofalp/toolreason/providers/observability"
)

// NewObservabilityMiddleware wraps every provider call in an llm.request span
// carrying the model, sampling parameters, finish reason and token usage.
// The span is placed on the context so the HTTP layer can add its events.
//
// [New] prepends it automatically when an observer is configured, making it the
// outermost wrapper so it sees the final outcome after timeouts.
func NewObservabilityMiddleware(observer observability.Provider, provider string) MiddlewareConfig {
	return MiddlewareConfig{
		Send: func(next SendFunc) SendFunc {
			return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
				attrs := []observability.Attribute{
					observability.String(observability.AttrLLMProvider, provider),
					observability.String(observability.AttrLLMModel, request.Model),
				}
				if cfg := request.GenerationConfig; cfg != nil {
					attrs = append(attrs,
						observability.Float64(observability.AttrLLMTemperature, cfg.Temperature),
						observability.Int(observability.AttrLLMMaxTokens, cfg.MaxTokens),
					)
				}

				ctx, span := observer.StartSpan(ctx, observability.SpanLLMRequest, attrs...)
				defer span.End()

				start := time.Now()
				response, err := next(ctx, request)
				elapsed := time.Since(start)

				if err != nil {
					span.RecordError(err)
					span.SetStatus(observability.StatusError, "llm request failed")
					span.SetAttributes(observability.Duration(observability.AttrDuration, elapsed))
					return nil, err
				}

				span.SetAttributes(
					observability.String(observability.AttrLLMFinishReason, response.FinishReason),
					observability.Int(observability.AttrResponseLength, len(response.Content)),
				)
				if response.Usage != nil {
					span.SetAttributes(observability.Int(observability.AttrLLMTokensTotal, response.Usage.TotalTokens))
				}
				span.SetStatus(observability.StatusOK, "")

				observer.Debug(ctx, "llm request completed",
					observability.String(observability.AttrLLMModel, response.Model),
					observability.Duration(observability.AttrDuration, elapsed),
				)
				return response, nil
			}
		},
	}
}
