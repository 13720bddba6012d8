// Package networkcommissioning implements the Network Commissioning
// Cluster (0x0031).
//
// The Network Commissioning cluster provisions a device onto a Thread or
// WiFi network: it owns a fixed-capacity table of network credential
// profiles and the commands that add, remove, and connect them. Connecting
// dispatches to a platform Connector; a successful connect marks the
// profile enabled and notifies the device control layer that the network
// is the new operational path.
//
// This cluster is typically present on the root endpoint (endpoint 0).
package networkcommissioning

import (
	"context"
	"sync"

	"github.com/pion/logging"

	"github.com/provnet/matter/pkg/datamodel"
	"github.com/provnet/matter/pkg/tlv"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0031
	ClusterRevision uint16              = 1
)

// Command IDs.
const (
	CmdScanNetworks             datamodel.CommandID = 0x00
	CmdScanNetworksResponse     datamodel.CommandID = 0x01
	CmdAddOrUpdateWiFiNetwork   datamodel.CommandID = 0x02
	CmdAddOrUpdateThreadNetwork datamodel.CommandID = 0x03
	CmdRemoveNetwork            datamodel.CommandID = 0x04
	CmdNetworkConfigResponse    datamodel.CommandID = 0x05
	CmdConnectNetwork           datamodel.CommandID = 0x06
	CmdConnectNetworkResponse   datamodel.CommandID = 0x07
	CmdReorderNetwork           datamodel.CommandID = 0x08
)

// Status is the cluster-level outcome code carried in command responses.
type Status uint8

const (
	StatusSuccess                Status = 0
	StatusOutOfRange             Status = 1
	StatusBoundsExceeded         Status = 2
	StatusNetworkIDNotFound      Status = 3
	StatusDuplicateNetworkID     Status = 4
	StatusNetworkNotFound        Status = 5
	StatusRegulatoryError        Status = 6
	StatusAuthFailure            Status = 7
	StatusUnsupportedSecurity    Status = 8
	StatusOtherConnectionFailure Status = 9
	StatusIPV6Failed             Status = 10
	StatusIPBindFailed           Status = 11
	StatusUnknownError           Status = 12
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusOutOfRange:
		return "OutOfRange"
	case StatusBoundsExceeded:
		return "BoundsExceeded"
	case StatusNetworkIDNotFound:
		return "NetworkIDNotFound"
	case StatusDuplicateNetworkID:
		return "DuplicateNetworkID"
	case StatusNetworkNotFound:
		return "NetworkNotFound"
	case StatusRegulatoryError:
		return "RegulatoryError"
	case StatusAuthFailure:
		return "AuthFailure"
	case StatusUnsupportedSecurity:
		return "UnsupportedSecurity"
	case StatusOtherConnectionFailure:
		return "OtherConnectionFailure"
	case StatusIPV6Failed:
		return "IPV6Failed"
	case StatusIPBindFailed:
		return "IPBindFailed"
	case StatusUnknownError:
		return "UnknownError"
	default:
		return "Unknown"
	}
}

// Config provides dependencies for the Network Commissioning cluster.
type Config struct {
	// EndpointID is the endpoint this cluster belongs to (usually 0).
	EndpointID datamodel.EndpointID

	// MaxNetworks is the profile table capacity.
	// Zero uses DefaultMaxNetworks.
	MaxNetworks int

	// Connector applies profile credentials to the platform network
	// stack. A nil connector, or a connector without the relevant
	// driver, makes the corresponding commands report UnknownError the
	// same way an unsupported command would.
	Connector *Connector

	// DeviceControl receives the operational-path notification after a
	// successful connect. Optional.
	DeviceControl DeviceControl

	// LoggerFactory creates the cluster's logger. Optional.
	LoggerFactory logging.LoggerFactory
}

// Cluster implements the Network Commissioning cluster (0x0031).
type Cluster struct {
	*datamodel.ClusterBase
	config Config
	table  *NetworkTable
	log    logging.LeveledLogger

	// connectMu serializes ConnectNetwork invocations: the connector may
	// block for radio time and only one connect may be in flight at a
	// time against the table.
	connectMu sync.Mutex
}

// New creates a new Network Commissioning cluster with an empty profile
// table.
func New(cfg Config) *Cluster {
	c := &Cluster{
		ClusterBase: datamodel.NewClusterBase(ClusterID, cfg.EndpointID, ClusterRevision),
		config:      cfg,
		table:       NewNetworkTable(cfg.MaxNetworks),
	}
	if cfg.LoggerFactory != nil {
		c.log = cfg.LoggerFactory.NewLogger("netcomm")
	}
	return c
}

// Table returns the cluster's profile table.
func (c *Cluster) Table() *NetworkTable {
	return c.table
}

// AcceptedCommandList implements datamodel.Cluster.
func (c *Cluster) AcceptedCommandList() []datamodel.CommandEntry {
	adminPriv := datamodel.PrivilegeAdminister

	return []datamodel.CommandEntry{
		{ID: CmdAddOrUpdateWiFiNetwork, InvokePrivilege: adminPriv},
		{ID: CmdAddOrUpdateThreadNetwork, InvokePrivilege: adminPriv},
		{ID: CmdRemoveNetwork, InvokePrivilege: adminPriv},
		{ID: CmdConnectNetwork, InvokePrivilege: adminPriv},
	}
}

// GeneratedCommandList implements datamodel.Cluster.
func (c *Cluster) GeneratedCommandList() []datamodel.CommandID {
	return []datamodel.CommandID{
		CmdNetworkConfigResponse,
		CmdConnectNetworkResponse,
	}
}

// InvokeCommand implements datamodel.Cluster.
func (c *Cluster) InvokeCommand(ctx context.Context, req datamodel.InvokeRequest, r *tlv.Reader) ([]byte, error) {
	entry := datamodel.FindCommand(c.AcceptedCommandList(), req.Path.Command)
	if entry == nil {
		return nil, datamodel.ErrUnsupportedCommand
	}

	switch req.Path.Command {
	case CmdAddOrUpdateWiFiNetwork:
		return c.handleAddOrUpdateWiFiNetwork(ctx, req, r)
	case CmdAddOrUpdateThreadNetwork:
		return c.handleAddOrUpdateThreadNetwork(ctx, req, r)
	case CmdRemoveNetwork:
		return c.handleRemoveNetwork(ctx, req, r)
	case CmdConnectNetwork:
		return c.handleConnectNetwork(ctx, req, r)
	default:
		return nil, datamodel.ErrUnsupportedCommand
	}
}

func (c *Cluster) logf(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
