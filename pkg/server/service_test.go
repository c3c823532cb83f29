package server

import (
	"context"
	"testing"

	pb "github.com/mpsalisbury/poker/pkg/proto"
)

func TestPing(t *testing.T) {
	svc := NewPokerEvalService()
	resp, err := svc.Ping(context.Background(), &pb.PingRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if resp.GetMessage() != "Pong" {
		t.Errorf("Ping=%q, want %q", resp.GetMessage(), "Pong")
	}
}

func TestEvaluate(t *testing.T) {
	svc := NewPokerEvalService()
	req := &pb.EvalRequest{
		Game:  "h",
		Board: "5c8s9h",
		Hands: []string{"AcAs", "KdKc"},
	}
	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	results := resp.GetResults()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	aces, kings := results[0], results[1]
	if aces.GetValue() <= kings.GetValue() {
		t.Errorf("aces %d should beat kings %d", aces.GetValue(), kings.GetValue())
	}
	for _, r := range results {
		if r.GetDescription() != "one pair" {
			t.Errorf("Evaluate(%s)=%q, want %q", r.GetHand(), r.GetDescription(), "one pair")
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *pb.EvalRequest
	}{
		{"unknown game", &pb.EvalRequest{Game: "z", Hands: []string{"AcAs"}}},
		{"bad hand", &pb.EvalRequest{Game: "h", Hands: []string{"Xx2c3c4c"}}},
		{"trailing garbage in hand", &pb.EvalRequest{Game: "h", Hands: []string{"AcAsXx"}}},
		{"duplicate card in hand", &pb.EvalRequest{Game: "h", Hands: []string{"AcAc"}}},
		{"bad board", &pb.EvalRequest{Game: "h", Board: "5c8sXx", Hands: []string{"AcAs"}}},
		{"hand overlaps board", &pb.EvalRequest{Game: "h", Board: "AcKs9h", Hands: []string{"AcAs"}}},
	}
	svc := NewPokerEvalService()
	for _, tc := range tests {
		if _, err := svc.Evaluate(context.Background(), tc.req); err == nil {
			t.Errorf("%s: Evaluate should fail", tc.name)
		}
	}
}
