package discovery

import (
	"log"
	"net"
	"sort"
	"time"

	"golang.org/x/exp/slices"

	"github.com/google/uuid"
	ssdp "github.com/koron/go-ssdp"
)

var (
	serviceType    = "game:pokereval"
	serverName     = "PokerEvalServer/1.0"
	serverUniqueId = uuid.NewString()
	cacheMaxAge, _ = time.ParseDuration("30m")
)

// Advertise the PokerEvalService via SSDP at the given hostLocation.
// Close() the returned Advertiser when done.
func AdvertiseService(hostLocation string) (*ssdp.Advertiser, error) {
	return ssdp.Advertise(serviceType, serverUniqueId, hostLocation, serverName, int(cacheMaxAge.Seconds()))
}

// Find any PokerEvalService providers on the current LAN via SSDP.
// Returns a list of host addresses.
func FindService(waitTime time.Duration) ([]string, error) {
	//listenOnlyToEn0()
	servers, err := ssdp.Search(serviceType, int(waitTime.Seconds()), "")
	if err != nil {
		return nil, err
	}
	var locs []string
	for _, svr := range servers {
		if svr.Type != serviceType {
			continue
		}
		locs = append(locs, svr.Location)
	}
	sort.Strings(locs)
	locs = slices.Compact(locs)
	return locs, nil
}

func listenOnlyToEn0() {
	en0, err := net.InterfaceByName("en0")
	if err != nil {
		log.Printf("Can't find interface 'en0'. SSDP listening on all interfaces")
		return
	}
	ssdp.Interfaces = []net.Interface{*en0}
}
