package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"

	tc "github.com/you-humble/assembly-seeder/platform/testcontainers"
)

type Network struct {
	network *testcontainers.DockerNetwork
}

// NewNetwork creates an attachable bridge network labelled with the suite name.
func NewNetwork(ctx context.Context, suite string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": tc.ProjectLabel,
			"suite":   suite,
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create docker network")
	}

	return &Network{network: net}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

func (n *Network) Remove(ctx context.Context) error {
	return n.network.Remove(ctx)
}
