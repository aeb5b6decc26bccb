package domain

type TransactionType string

const (
	TxEarned       TransactionType = "earned"
	TxSpent        TransactionType = "spent"
	TxRefill       TransactionType = "refill"
	TxPurchase     TransactionType = "purchase"
	TxReferral     TransactionType = "referral"
	TxRegistration TransactionType = "registration"
	TxExpired      TransactionType = "expired"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxEarned, TxSpent, TxRefill, TxPurchase, TxReferral, TxRegistration, TxExpired:
		return true
	}
	return false
}

// CoinSource names the bucket a ledger entry drew from or added to.
type CoinSource string

const (
	SourceMonthlyFree  CoinSource = "monthly_free"
	SourceSubscription CoinSource = "subscription"
	SourcePermanent    CoinSource = "permanent"
)

// ConsumptionOrder lists buckets in the order spends drain them: the
// allowance that resets soonest goes first, permanent coins last.
var ConsumptionOrder = []CoinSource{SourceMonthlyFree, SourceSubscription, SourcePermanent}

func (s CoinSource) Valid() bool {
	switch s {
	case SourceMonthlyFree, SourceSubscription, SourcePermanent:
		return true
	}
	return false
}

type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformApple  Platform = "apple"
)

func (p Platform) Valid() bool {
	return p == PlatformGoogle || p == PlatformApple
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationFailed   VerificationStatus = "failed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type GoalType string

const (
	GoalWeightLoss     GoalType = "weight_loss"
	GoalWeightMaintain GoalType = "weight_maintain"
	GoalMuscleGain     GoalType = "muscle_gain"
)

func (g GoalType) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalWeightMaintain, GoalMuscleGain:
		return true
	}
	return false
}

type ActivityKind string

const (
	ActivitySteps   ActivityKind = "steps"
	ActivityWorkout ActivityKind = "workout"
	ActivityWeight  ActivityKind = "weight"
)

func (k ActivityKind) Valid() bool {
	switch k {
	case ActivitySteps, ActivityWorkout, ActivityWeight:
		return true
	}
	return false
}
