package server

import (
	"log"
	"net"
)

// GetOutboundIP finds this host's preferred outbound IP address.
func GetOutboundIP() net.IP {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		log.Fatalf("can't determine outbound IP: %v", err)
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP
}
