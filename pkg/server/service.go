package server

import (
	"context"
	"fmt"
	"log"

	"github.com/mpsalisbury/poker/pkg/poker"
	pb "github.com/mpsalisbury/poker/pkg/proto"
)

func NewPokerEvalService() pb.PokerEvalServiceServer {
	return &pokerEvalService{}
}

type pokerEvalService struct {
	pb.UnsafePokerEvalServiceServer
}

func (*pokerEvalService) Ping(ctx context.Context, request *pb.PingRequest) (*pb.PingResponse, error) {
	log.Printf("Got ping %s", request.GetMessage())
	return &pb.PingResponse{Message: "Pong"}, nil
}

func (*pokerEvalService) Evaluate(ctx context.Context, req *pb.EvalRequest) (*pb.EvalResponse, error) {
	variant, err := poker.ParseVariant(req.GetGame())
	if err != nil {
		return nil, err
	}
	board := poker.ParseCardSet(req.GetBoard())
	if board.Size() != len(req.GetBoard())/2 {
		return nil, fmt.Errorf("can't parse board '%s'", req.GetBoard())
	}
	var results []*pb.EvalResult
	for _, h := range req.GetHands() {
		hand := poker.ParseCardSet(h)
		if hand.IsEmpty() || hand.Size() != len(h)/2 {
			return nil, fmt.Errorf("can't parse hand '%s'", h)
		}
		if !hand.Disjoint(board) {
			return nil, fmt.Errorf("hand %s shares cards with the board", hand)
		}
		e := hand.Union(board).Evaluate(variant)
		results = append(results, &pb.EvalResult{
			Hand:        hand.String(),
			Value:       int32(e),
			Description: e.String(),
		})
	}
	return &pb.EvalResponse{Results: results}, nil
}
