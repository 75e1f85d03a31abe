package chaincfg

import (
	"time"

	"github.com/mogwai-project/mogwai-node/util"
)

const noTimeout = 999999999999

var (
	regtestGenesisHash = mustHash("00000003c432c0f65db86e8ea6ae404a7e3af936c4c961359ce9eeec637cb901")
	regtestMerkleRoot  = mustHash("9deff0967add859c9c5f1dd60bee7afd05fd5fcfb0d7f94f9067781a70d84ae2")
	regtestPowLimit    = mustHash("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

// RegressionNetParams defines the regression test network. It has no seeds, no spork
// or alert keys, and mines blocks on demand.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         [4]byte{0x93, 0x70, 0xcc, 0xcc},
	DefaultPort: 17999,

	Genesis: Genesis{
		Hash:       regtestGenesisHash,
		MerkleRoot: regtestMerkleRoot,
		Time:       1518378444,
		Nonce:      64329,
		Bits:       0x1e0ffff0,
		Version:    1,
		Reward:     50 * COIN,
	},

	Consensus: Consensus{
		PremineReward: 0,
		Subsidy: SubsidyFactors{
			Feed: 7,
			Face: 1,
			Caca: 1,
			C0fe: 4,
			Baba: 1,
		},
		SubsidyHalvingInterval:       150,
		SubsidyHalvingDeclinePercent: 14,

		MasternodePaymentsStartBlock:   0,
		InstantSendKeepLock:            6,
		BudgetPaymentsStartBlock:       1000,
		BudgetPaymentsCycleBlocks:      50,
		BudgetPaymentsWindowBlocks:     10,
		BudgetProposalEstablishingTime: 20 * time.Minute,
		SuperblockStartBlock:           1500,
		SuperblockCycle:                10,
		GovernanceMinQuorum:            1,
		GovernanceFilterElements:       100,
		MasternodeMinimumConfirmations: 1,
		MajorityEnforceBlockUpgrade:    750,
		MajorityRejectBlockOutdated:    950,
		MajorityWindow:                 1000,
		BIP34Height:                    -1,
		BIP34Hash:                      util.Hash{},
		PowLimit:                       regtestPowLimit,
		PowTargetTimespan:              day,
		PowTargetSpacing:               150 * time.Second,
		PowAllowMinDifficultyBlocks:    true,
		PowNoRetargeting:               true,
		PowKGWHeight:                   15200,
		PowDGWHeight:                   34140,
		RuleChangeActivationThreshold:  108, // 75% of 144
		MinerConfirmationWindow:        144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {Bit: 28, Timeout: noTimeout},
			DeploymentCSV:       {Bit: 0, Timeout: noTimeout},
			DeploymentDIP0001:   {Bit: 1, Timeout: noTimeout},
		},
		MinimumChainWork:   util.Hash{},
		DefaultAssumeValid: util.Hash{},
	},

	CheckpointData: CheckpointData{
		Checkpoints: []Checkpoint{
			{0, regtestGenesisHash},
		},
		LastCheckpointTime:         1518378444,
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         0,
	},

	MaxTipAge:                  6 * time.Hour,
	DelayGetHeadersTime:        0,
	PruneAfterHeight:           1000,
	MiningRequiresPeers:        false,
	DefaultConsistencyChecks:   true,
	RequireStandard:            false,
	MineBlocksOnDemand:         true,
	FulfilledRequestExpireTime: 5 * time.Minute,

	// addresses start with 'm'
	PubKeyHashAddrID: 110,
	ScriptHashAddrID: 19,
	PrivateKeyID:     239,

	// same as testnet
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},

	HDCoinType: 1,
}
