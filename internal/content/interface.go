package content

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/hidayahlabs/dhikrd/internal/content Provider

import "context"

// Provider supplies period-appropriate invocation content for automatic
// sessions
type Provider interface {
	// GetRandomInvocation returns one invocation suited to the period
	GetRandomInvocation(ctx context.Context, input *GetRandomInvocationInput) (*GetRandomInvocationOutput, error)

	// GetPeriodDisplayName returns the session display name for the period
	GetPeriodDisplayName(ctx context.Context, input *GetPeriodDisplayNameInput) (*GetPeriodDisplayNameOutput, error)
}
