package chaincfg

import (
	"time"

	"github.com/mogwai-project/mogwai-node/util"
)

var (
	testGenesisHash = mustHash("000007345a61ed0f4a7d8a491ffc5b09e6599af85d188175c041e2ca6a3006e5")
	testAlertPubKey = util.AssertHexDec("045b9703907569e67346e69d4784360970116c9fd6ddc56615e1dfc8bc63c876bf985007eca0248bb3031ef6e1e0ded215194066cf7a9060c27562787073fceac9")
)

// TestNetParams defines the Mogwai test network. It shares the genesis merkle root and
// PoW limit of the main network.
var TestNetParams = Params{
	Name:        "test",
	Net:         [4]byte{0x92, 0x70, 0xcb, 0xcb},
	DefaultPort: 17888,
	DNSSeeds: []DNSSeed{
		{"mogwaicoin.info", "dns-seed-test1.mogwaicoin.info"},
	},

	Genesis: Genesis{
		Hash:       testGenesisHash,
		MerkleRoot: mainMerkleRoot,
		Time:       1520451777,
		Nonce:      202278,
		Bits:       0x1e0ffff0,
		Version:    1,
		Reward:     1984 * COIN,
	},

	Consensus: Consensus{
		PremineReward: 10000,
		Subsidy: SubsidyFactors{
			Feed: 7,
			Face: 1,
			Caca: 1,
			C0fe: 4,
			Baba: 1,
		},
		SubsidyHalvingInterval:       10 * 777,
		SubsidyHalvingDeclinePercent: 14,

		MasternodePaymentsStartBlock:   0,
		InstantSendKeepLock:            6,
		BudgetPaymentsStartBlock:       777,
		BudgetPaymentsCycleBlocks:      77,
		BudgetPaymentsWindowBlocks:     10,
		BudgetProposalEstablishingTime: 20 * time.Minute,
		SuperblockStartBlock:           10 * 777, // must be above BudgetPaymentsStartBlock
		SuperblockCycle:                77,
		GovernanceMinQuorum:            1,
		GovernanceFilterElements:       500,
		MasternodeMinimumConfirmations: 1,
		MajorityEnforceBlockUpgrade:    51,
		MajorityRejectBlockOutdated:    75,
		MajorityWindow:                 100,
		BIP34Height:                    1,
		BIP34Hash:                      testGenesisHash,
		PowLimit:                       mainPowLimit,
		PowTargetTimespan:              10 * time.Minute,
		PowTargetSpacing:               111 * time.Second, // 777 blocks a day
		PowAllowMinDifficultyBlocks:    true,
		PowNoRetargeting:               false,
		PowKGWHeight:                   4001, // KGW is off when PowKGWHeight >= PowDGWHeight
		PowDGWHeight:                   4001,
		RuleChangeActivationThreshold:  1512, // 75% for testchains
		MinerConfirmationWindow:        2016,
		Deployments:                    MainNetParams.Consensus.Deployments,
		MinimumChainWork:               util.Hash{},
		DefaultAssumeValid:             testGenesisHash,
	},

	CheckpointData: CheckpointData{
		Checkpoints: []Checkpoint{
			{0, testGenesisHash},
		},
		LastCheckpointTime:         1520451777,
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         500,
	},

	// testnet allows mining on top of old blocks
	MaxTipAge:                  0x7fffffff * time.Second,
	DelayGetHeadersTime:        100 * day,
	PruneAfterHeight:           1000,
	MiningRequiresPeers:        true,
	DefaultConsistencyChecks:   false,
	RequireStandard:            false,
	MineBlocksOnDemand:         false,
	PoolMaxTransactions:        3,
	FulfilledRequestExpireTime: 5 * time.Minute,
	SporkPubKey:                sporkPubKey,
	AlertPubKey:                testAlertPubKey,

	// addresses start with 't'
	PubKeyHashAddrID: 127,
	// script addresses start with '8' or '9'
	ScriptHashAddrID: 19,
	// private keys start with '9' or 'c'
	PrivateKeyID: 239,

	// tprv / tpub
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},

	HDCoinType: 1,
}
