package jobpost

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a canned posting for local development.
type MockConnector struct{}

func NewMockConnector() *MockConnector {
	return &MockConnector{}
}

func (m *MockConnector) FetchPosting(ctx context.Context, url string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] fetching job posting", zap.String("url", url))

	return `Senior Software Engineer at Acme Corp

We are looking for a senior engineer to join our platform team.

Requirements:
- 5+ years of backend development experience
- Strong Go and PostgreSQL skills
- Experience operating services in Kubernetes
- Clear written communication

Nice to have:
- Experience with event-driven architectures
- Open source contributions`, nil
}
