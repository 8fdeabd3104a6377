package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListSwitches(ctx context.Context, input ListSwitchesInput) (ListSwitchesOutput, error)
}
