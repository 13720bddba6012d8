// netcomm-device is a Network Commissioning cluster demo.
//
// This binary runs the device-side commissioning flow against simulated
// platform drivers: it adds a WiFi credential profile, connects it, and
// prints the resulting profile table. Use it to observe the command and
// status flow without radio hardware.
//
// Usage:
//
//	netcomm-device [options]
//
// Options:
//
//	-ssid         WiFi SSID to provision (default: "HomeNet")
//	-credentials  WiFi credentials (default: "secret12")
//	-max-networks Profile table capacity (default: 4)
//	-log-level    Log level: disabled, error, warn, info, debug, trace
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pion/logging"

	"github.com/provnet/matter/pkg/clusters/networkcommissioning"
	"github.com/provnet/matter/pkg/datamodel"
	"github.com/provnet/matter/pkg/tlv"
)

// simWiFiDriver pretends every provisioning attempt succeeds.
type simWiFiDriver struct {
	log logging.LeveledLogger
}

func (d *simWiFiDriver) ProvisionWiFi(ssid, credentials string) error {
	d.log.Infof("associating with %q", ssid)
	return nil
}

// simDeviceControl logs the operational-path notification.
type simDeviceControl struct {
	log logging.LeveledLogger
}

func (d *simDeviceControl) ConnectNetworkForOperational(networkID []byte) {
	d.log.Infof("network %q is now the operational path", networkID)
}

func main() {
	ssid := flag.String("ssid", "HomeNet", "WiFi SSID to provision")
	credentials := flag.String("credentials", "secret12", "WiFi credentials")
	maxNetworks := flag.Int("max-networks", networkcommissioning.DefaultMaxNetworks, "profile table capacity")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	levels := map[string]logging.LogLevel{
		"disabled": logging.LogLevelDisabled,
		"error":    logging.LogLevelError,
		"warn":     logging.LogLevelWarn,
		"info":     logging.LogLevelInfo,
		"debug":    logging.LogLevelDebug,
		"trace":    logging.LogLevelTrace,
	}
	level, ok := levels[*logLevel]
	if !ok {
		log.Fatalf("invalid log level %q", *logLevel)
	}

	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.DefaultLogLevel = level
	logger := loggerFactory.NewLogger("main")

	cluster := networkcommissioning.New(networkcommissioning.Config{
		EndpointID:  0,
		MaxNetworks: *maxNetworks,
		Connector: &networkcommissioning.Connector{
			WiFi: &simWiFiDriver{log: loggerFactory.NewLogger("wifi")},
		},
		DeviceControl: &simDeviceControl{log: loggerFactory.NewLogger("devctl")},
		LoggerFactory: loggerFactory,
	})

	ctx := context.Background()

	// Add the profile.
	addPayload, err := networkcommissioning.EncodeAddOrUpdateWiFiNetworkRequest(
		&networkcommissioning.AddOrUpdateWiFiNetworkRequest{
			SSID:        []byte(*ssid),
			Credentials: []byte(*credentials),
		})
	if err != nil {
		log.Fatalf("encode add request: %v", err)
	}
	addResp, err := invoke(ctx, cluster, networkcommissioning.CmdAddOrUpdateWiFiNetwork, addPayload)
	if err != nil {
		log.Fatalf("add command: %v", err)
	}
	added, err := networkcommissioning.DecodeNetworkConfigResponse(addResp)
	if err != nil {
		log.Fatalf("decode add response: %v", err)
	}
	logger.Infof("AddOrUpdateWiFiNetwork: %v", added.NetworkingStatus)
	if added.NetworkingStatus != networkcommissioning.StatusSuccess {
		os.Exit(1)
	}

	// Connect it.
	connPayload, err := networkcommissioning.EncodeConnectNetworkRequest(
		&networkcommissioning.ConnectNetworkRequest{NetworkID: []byte(*ssid)})
	if err != nil {
		log.Fatalf("encode connect request: %v", err)
	}
	connResp, err := invoke(ctx, cluster, networkcommissioning.CmdConnectNetwork, connPayload)
	if err != nil {
		log.Fatalf("connect command: %v", err)
	}
	connected, err := networkcommissioning.DecodeConnectNetworkResponse(connResp)
	if err != nil {
		log.Fatalf("decode connect response: %v", err)
	}
	logger.Infof("ConnectNetwork: %v", connected.NetworkingStatus)
	if connected.NetworkingStatus != networkcommissioning.StatusSuccess {
		os.Exit(1)
	}

	fmt.Println("profile table:")
	for i, p := range cluster.Table().Snapshot() {
		if p.Payload == nil {
			fmt.Printf("  slot %d: free\n", i)
			continue
		}
		fmt.Printf("  slot %d: id=%q enabled=%v\n", i, p.NetworkID, p.Enabled)
	}
}

func invoke(ctx context.Context, c *networkcommissioning.Cluster, cmd datamodel.CommandID, payload []byte) ([]byte, error) {
	return c.InvokeCommand(ctx,
		datamodel.InvokeRequest{Path: c.CommandPath(cmd)},
		tlv.NewReader(bytes.NewReader(payload)))
}
