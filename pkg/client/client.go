package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/mpsalisbury/poker/pkg/discovery"
	pb "github.com/mpsalisbury/poker/pkg/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const hostedServer = "api.poker.salisburyclan.com:443"
const localServer = "localhost:50051"

type ServerType uint8

const (
	LocalServer ServerType = iota
	HostedServer
)

var configs = map[ServerType]struct {
	serverAddr string
	secure     bool
}{
	LocalServer:  {localServer, false},
	HostedServer: {hostedServer, true},
}

// Connect opens a connection to the requested evaluation server.
// Close() the returned Connection when done.
func Connect(stype ServerType) (Connection, error) {
	config, ok := configs[stype]
	if !ok {
		return nil, fmt.Errorf("server type %v not supported", stype)
	}
	cred := func() credentials.TransportCredentials {
		if config.secure {
			return credentials.NewTLS(&tls.Config{
				InsecureSkipVerify: false,
			})
		}
		return insecure.NewCredentials()
	}()
	conn, err := grpc.Dial(config.serverAddr, grpc.WithTransportCredentials(cred))
	if err != nil {
		return nil, err
	}
	return &connection{conn: conn, client: pb.NewPokerEvalServiceClient(conn)}, nil
}

// ConnectByName connects to the server selected by an AddServerFlag
// value. "lan" searches for an advertised server via discovery.
func ConnectByName(name string) (Connection, error) {
	switch name {
	case "local":
		return Connect(LocalServer)
	case "hosted":
		return Connect(HostedServer)
	case "lan":
		locs, err := discovery.FindService(time.Second)
		if err != nil {
			return nil, err
		}
		if len(locs) == 0 {
			return nil, fmt.Errorf("no server found on the LAN")
		}
		return ConnectTo(locs[0])
	}
	return nil, fmt.Errorf("unknown server name '%s'", name)
}

// ConnectTo opens an insecure connection to the server at the given
// address, as reported by discovery.
func ConnectTo(serverAddr string) (Connection, error) {
	conn, err := grpc.Dial(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &connection{conn: conn, client: pb.NewPokerEvalServiceClient(conn)}, nil
}

type Connection interface {
	Close()
	Ping(ctx context.Context, message string) (string, error)
	Evaluate(ctx context.Context, game, board string, hands []string) ([]HandValue, error)
}

// HandValue reports the strength of one evaluated hand.
type HandValue struct {
	Hand        string
	Value       int32
	Description string
}

type connection struct {
	conn   *grpc.ClientConn
	client pb.PokerEvalServiceClient
}

func (c *connection) Close() {
	c.conn.Close()
}

func (c *connection) Ping(ctx context.Context, message string) (string, error) {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{Message: message})
	if err != nil {
		return "", err
	}
	return resp.GetMessage(), nil
}

func (c *connection) Evaluate(ctx context.Context, game, board string, hands []string) ([]HandValue, error) {
	req := &pb.EvalRequest{
		Game:  game,
		Board: board,
		Hands: hands,
	}
	resp, err := c.client.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}
	var values []HandValue
	for _, r := range resp.GetResults() {
		values = append(values, HandValue{
			Hand:        r.GetHand(),
			Value:       r.GetValue(),
			Description: r.GetDescription(),
		})
	}
	return values, nil
}
