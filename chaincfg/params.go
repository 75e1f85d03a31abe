// Package chaincfg defines the parameters of the Mogwai networks: main, test and
// regtest. Params values are built once at package init and must be treated as
// read-only afterwards; they are passed explicitly to code that depends on the network
// instead of being selected through global state.
package chaincfg

import (
	"time"

	"github.com/mogwai-project/mogwai-node/util"
)

// COIN is the number of base units in one coin.
const COIN = 100_000_000

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	Name string
	Host string
}

// Checkpoint identifies a known good block height and hash.
type Checkpoint struct {
	Height int32
	Hash   util.Hash
}

// CheckpointData holds the checkpoint list together with the statistics used to
// estimate verification progress.
type CheckpointData struct {
	Checkpoints []Checkpoint

	// UNIX timestamp of the last checkpoint block
	LastCheckpointTime         int64
	// total number of transactions between genesis and the last checkpoint
	TransactionsLastCheckpoint int64
	// estimated number of transactions per day after the checkpoint
	TransactionsPerDay         float64
}

// DeploymentID indexes Consensus.Deployments.
type DeploymentID int

const (
	DeploymentTestDummy DeploymentID = iota
	DeploymentCSV                    // BIP68, BIP112 and BIP113
	DeploymentDIP0001

	DefinedDeployments
)

// ConsensusDeployment describes a BIP9 version bits deployment.
type ConsensusDeployment struct {
	Bit       uint8
	StartTime int64
	Timeout   int64

	// zero means the defaults from Consensus are used
	WindowSize int64
	Threshold  int64
}

// SubsidyFactors weights the block reward schedule. The names are the hex words the
// reward tiers were given on launch.
type SubsidyFactors struct {
	Feed int32
	Face int32
	Caca int32
	C0fe int32
	Baba int32
}

// Consensus holds the consensus constants of a network. They are static
// configuration here; validation lives elsewhere.
type Consensus struct {
	PremineReward                int64 // in coins, paid on the first mined block
	Subsidy                      SubsidyFactors
	SubsidyHalvingInterval       int32
	SubsidyHalvingDeclinePercent int32

	MasternodePaymentsStartBlock   int32
	InstantSendKeepLock            int32
	BudgetPaymentsStartBlock       int32
	BudgetPaymentsCycleBlocks      int32
	BudgetPaymentsWindowBlocks     int32
	BudgetProposalEstablishingTime time.Duration
	SuperblockStartBlock           int32
	SuperblockCycle                int32
	GovernanceMinQuorum            int32
	GovernanceFilterElements       int32
	MasternodeMinimumConfirmations int32
	MajorityEnforceBlockUpgrade    int32
	MajorityRejectBlockOutdated    int32
	MajorityWindow                 int32
	BIP34Height                    int32 // -1 when not necessarily active
	BIP34Hash                      util.Hash
	PowLimit                       util.Hash
	PowTargetTimespan              time.Duration
	PowTargetSpacing               time.Duration
	PowAllowMinDifficultyBlocks    bool
	PowNoRetargeting               bool
	PowKGWHeight                   int32
	PowDGWHeight                   int32
	RuleChangeActivationThreshold  uint32
	MinerConfirmationWindow        uint32
	Deployments                    [DefinedDeployments]ConsensusDeployment
	MinimumChainWork               util.Hash
	DefaultAssumeValid             util.Hash
}

// Genesis describes the genesis block of a network.
type Genesis struct {
	Hash       util.Hash
	MerkleRoot util.Hash
	Time       uint32
	Nonce      uint32
	Bits       uint32
	Version    int32
	Reward     int64 // in base units
}

// Params defines a Mogwai network.
type Params struct {
	// Name is the network id used on the command line and in data directories.
	Name string

	// Net is the message start sequence that prefixes every P2P message.
	Net         [4]byte
	DefaultPort uint16
	DNSSeeds    []DNSSeed

	Genesis   Genesis
	Consensus Consensus

	CheckpointData CheckpointData

	MaxTipAge                  time.Duration
	DelayGetHeadersTime        time.Duration
	PruneAfterHeight           uint64
	MiningRequiresPeers        bool
	DefaultConsistencyChecks   bool
	RequireStandard            bool
	MineBlocksOnDemand         bool
	PoolMaxTransactions        int
	FulfilledRequestExpireTime time.Duration
	SporkPubKey                string
	AlertPubKey                []byte

	// Base58 version bytes for addresses and WIF private keys.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32 version bytes for extended keys.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinType is the BIP44 coin type used in m/44'/coin'/... paths.
	HDCoinType uint32
}

// HDVersion returns the extended key version bytes for the private or public variant.
func (p *Params) HDVersion(private bool) [4]byte {
	if private {
		return p.HDPrivateKeyID
	}
	return p.HDPublicKeyID
}

// Checkpoints returns the checkpoint list, ordered by height.
func (p *Params) Checkpoints() []Checkpoint {
	return p.CheckpointData.Checkpoints
}

func mustHash(s string) util.Hash {
	return util.AssertHash(s)
}
