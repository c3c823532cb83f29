package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/mpsalisbury/poker/pkg/discovery"
	pb "github.com/mpsalisbury/poker/pkg/proto"
	"github.com/mpsalisbury/poker/pkg/server"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "50051"
	}
	host := server.GetOutboundIP()
	hostport := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Listening on %s", hostport)
	listener, err := net.Listen("tcp", hostport)
	if err != nil {
		log.Fatalf("net.Listen: %v", err)
	}

	ad, err := discovery.AdvertiseService(listener.Addr().String())
	if err != nil {
		log.Fatalf("AdvertiseService: %v", err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterPokerEvalServiceServer(grpcServer, server.NewPokerEvalService())
	if err = grpcServer.Serve(listener); err != nil {
		log.Fatal(err)
	}
	ad.Close()
}
