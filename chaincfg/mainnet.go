package chaincfg

import (
	"time"

	"github.com/mogwai-project/mogwai-node/util"
)

const day = 24 * time.Hour

// sporkPubKey is shared by main and test.
const sporkPubKey = "04f43eeb3bf7ab96dd377506aaa5cb1b7f234410578fbbed9985204c386b9a099cd12e94986a8a5ac7d9decbac7846fefab06d7c4de153ddfd485c7e841590ed35"

var (
	mainGenesisHash = mustHash("000006ba48cbdecd71bc411a3e0b609f1acab9806fc652040f247c8b86831d06")
	mainMerkleRoot  = mustHash("9d98b85b24d6683c4df84c74598113f2d602c02fdf693661e76cd2d801ded6ce")
	mainPowLimit    = mustHash("00000fffff000000000000000000000000000000000000000000000000000000")
	mainAssumeValid = mustHash("00000f7507d7ec543e61914078aec2ff1f97aa005855421746a9b1dad4b0e751")

	mainAlertPubKey = util.AssertHexDec("043902217c3fd0621353480a2f6c80d93929549a064a21089d60c75da6a1eae50b986466f1913083b2b504c8362ae8c735d936d50cc0e52ed0c633dbeaf350be49")
)

// MainNetParams defines the Mogwai main network.
var MainNetParams = Params{
	Name:        "main",
	Net:         [4]byte{0x91, 0x70, 0xca, 0xca},
	DefaultPort: 17777,
	DNSSeeds: []DNSSeed{
		{"mogwaicoin.org", "dns-seed1.mogwaicoin.org"},
		{"mogwaicoin.org", "dns-seed2.mogwaicoin.org"},
		{"mogwaicoin.org", "dns-seed3.mogwaicoin.org"},
		{"mogwaicoin.org", "dns-seed4.mogwaicoin.org"},
	},

	Genesis: Genesis{
		Hash:       mainGenesisHash,
		MerkleRoot: mainMerkleRoot,
		Time:       1529870000,
		Nonce:      657061,
		Bits:       0x1e0ffff0,
		Version:    1,
		Reward:     1984 * COIN,
	},

	Consensus: Consensus{
		PremineReward: 1_400_000,
		Subsidy: SubsidyFactors{
			Feed: 8,
			Face: 1,
			Caca: 1,
			C0fe: 6,
			Baba: 1,
		},
		SubsidyHalvingInterval:       365 * 720,
		SubsidyHalvingDeclinePercent: 14,

		MasternodePaymentsStartBlock:   0,
		InstantSendKeepLock:            24,
		BudgetPaymentsStartBlock:       21 * 720,
		BudgetPaymentsCycleBlocks:      30 * 720,
		BudgetPaymentsWindowBlocks:     100,
		BudgetProposalEstablishingTime: day,
		SuperblockStartBlock:           100 * 720,
		SuperblockCycle:                7 * 720,
		GovernanceMinQuorum:            10,
		GovernanceFilterElements:       20000,
		MasternodeMinimumConfirmations: 15,
		MajorityEnforceBlockUpgrade:    750,
		MajorityRejectBlockOutdated:    950,
		MajorityWindow:                 1000,
		BIP34Height:                    1,
		BIP34Hash:                      mainGenesisHash,
		PowLimit:                       mainPowLimit,
		PowTargetTimespan:              time.Hour,
		PowTargetSpacing:               2 * time.Minute,
		PowAllowMinDifficultyBlocks:    false,
		PowNoRetargeting:               false,
		PowKGWHeight:                   15200,
		PowDGWHeight:                   34140,
		RuleChangeActivationThreshold:  1916, // 95% of 2016
		MinerConfirmationWindow:        2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				Bit:       28,
				StartTime: 1199145601, // January 1, 2008
				Timeout:   1230767999, // December 31, 2008
			},
			DeploymentCSV: {
				Bit:       0,
				StartTime: 1486252800, // Feb 5th, 2017
				Timeout:   1517788800, // Feb 5th, 2018
			},
			DeploymentDIP0001: {
				Bit:        1,
				StartTime:  1508025600, // Oct 15th, 2017
				Timeout:    1539561600, // Oct 15th, 2018
				WindowSize: 4032,
				Threshold:  3226, // 80% of 4032
			},
		},
		MinimumChainWork:   util.Hash{},
		DefaultAssumeValid: mainAssumeValid,
	},

	CheckpointData: CheckpointData{
		Checkpoints: []Checkpoint{
			{100, mainAssumeValid},
		},
		LastCheckpointTime:         1529943799,
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         5000,
	},

	MaxTipAge:                  6 * time.Hour,
	DelayGetHeadersTime:        10 * day,
	PruneAfterHeight:           100000,
	MiningRequiresPeers:        true,
	DefaultConsistencyChecks:   false,
	RequireStandard:            true,
	MineBlocksOnDemand:         false,
	PoolMaxTransactions:        3,
	FulfilledRequestExpireTime: time.Hour,
	SporkPubKey:                sporkPubKey,
	AlertPubKey:                mainAlertPubKey,

	// addresses start with 'M'
	PubKeyHashAddrID: 50,
	// script addresses start with '7'
	ScriptHashAddrID: 16,
	// private keys start with '7' or 'X'
	PrivateKeyID: 204,

	// mprv / mpub
	HDPrivateKeyID: [4]byte{0x03, 0xa3, 0xf9, 0x89},
	HDPublicKeyID:  [4]byte{0x03, 0xa3, 0xfd, 0xc2},

	HDCoinType: 5,
}
