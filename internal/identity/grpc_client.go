package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/madome/auth-core/internal/identity/pb"
)

// GRPCPort is the real Port implementation, talking to the external users
// directory over gRPC. The directory is the source of truth for accounts;
// this core never writes to it.
type GRPCPort struct {
	client pb.UserDirectoryClient
}

func NewGRPCPort(client pb.UserDirectoryClient) *GRPCPort {
	return &GRPCPort{client: client}
}

var _ Port = (*GRPCPort)(nil)

func (p *GRPCPort) FindByEmail(ctx context.Context, email string) (*User, error) {
	reply, err := p.client.FindByEmail(ctx, &pb.FindByEmailRequest{Email: email})
	return fromReply(reply, err)
}

func (p *GRPCPort) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	reply, err := p.client.FindById(ctx, &pb.FindByIdRequest{Id: id.String()})
	return fromReply(reply, err)
}

func fromReply(reply *pb.UserReply, err error) (*User, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("users directory: %w", err)
	}

	id, err := uuid.Parse(reply.GetId())
	if err != nil {
		return nil, fmt.Errorf("users directory: malformed user id %q: %w", reply.GetId(), err)
	}

	return &User{
		ID:    id,
		Email: reply.GetEmail(),
		Role:  uint8(reply.GetRole()),
	}, nil
}
