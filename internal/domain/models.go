package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                     int             `db:"id"`
	Login                  string          `db:"login"`
	PasswordHash           string          `db:"password_hash"`
	CoinBalance            int64           `db:"coin_balance"`
	FractionalCoinBalance  decimal.Decimal `db:"fractional_coin_balance"`
	HasPremiumSubscription bool            `db:"has_premium_subscription"`
	PremiumExpiresAt       *time.Time      `db:"premium_expires_at"`
	MonthlyCoinsUsed       decimal.Decimal `db:"monthly_coins_used"`
	CurrentMonthStart      time.Time       `db:"current_month_start"`
	LastMonthlyRefill      *time.Time      `db:"last_monthly_refill"`
	Level                  int             `db:"level"`
	Experience             int             `db:"experience"`
	ReferralCode           string          `db:"referral_code"`
	ReferredBy             *int            `db:"referred_by"`
	TelegramID             *int64          `db:"telegram_id"`
	CreatedAt              time.Time       `db:"created_at"`
}

// CoinTransaction is an immutable ledger entry.
type CoinTransaction struct {
	ID               int              `db:"id"`
	UserID           int              `db:"user_id"`
	Amount           int64            `db:"amount"`
	FractionalAmount decimal.Decimal  `db:"fractional_amount"`
	Type             TransactionType  `db:"type"`
	CoinSource       CoinSource       `db:"coin_source"`
	FeatureUsed      string           `db:"feature_used"`
	Description      string           `db:"description"`
	Price            *decimal.Decimal `db:"price"`
	Period           string           `db:"period"`
	UsageDate        string           `db:"usage_date"`
	SubscriptionID   *int             `db:"subscription_id"`
	CreatedAt        time.Time        `db:"created_at"`
}

// Subscription is a time-boxed coin grant. Premium grants make spends free
// until ExpiresAt.
type Subscription struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	Type           string          `db:"type"`
	Price          decimal.Decimal `db:"price"`
	PurchasedAt    time.Time       `db:"purchased_at"`
	ExpiresAt      time.Time       `db:"expires_at"`
	IsActive       bool            `db:"is_active"`
	CoinsGranted   decimal.Decimal `db:"coins_granted"`
	CoinsRemaining decimal.Decimal `db:"coins_remaining"`
	Premium        bool            `db:"premium"`
}

type PurchaseVerification struct {
	ID                 int                `db:"id"`
	UserID             int                `db:"user_id"`
	Platform           Platform           `db:"platform"`
	PurchaseToken      string             `db:"purchase_token"`
	ProductID          string             `db:"product_id"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	CoinsAmount        decimal.Decimal    `db:"coins_amount"`
	DurationDays       int                `db:"duration_days"`
	Price              decimal.Decimal    `db:"price"`
	IsRestored         bool               `db:"is_restored"`
	CreatedAt          time.Time          `db:"created_at"`
	VerifiedAt         *time.Time         `db:"verified_at"`
}

type PendingPayment struct {
	ID          int             `db:"id"`
	PaymentID   string          `db:"payment_id"`
	TelegramID  int64           `db:"telegram_id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      PaymentStatus   `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

type Goal struct {
	ID                    int       `db:"id"`
	UserID                int       `db:"user_id"`
	GoalType              GoalType  `db:"goal_type"`
	TargetCalories        *float64  `db:"target_calories"`
	TargetProtein         *float64  `db:"target_protein"`
	TargetCarbs           *float64  `db:"target_carbs"`
	TargetFats            *float64  `db:"target_fats"`
	TargetStepsPerDay     *int      `db:"target_steps_per_day"`
	TargetWorkoutsPerWeek *int      `db:"target_workouts_per_week"`
	TargetWeight          *float64  `db:"target_weight"`
	IsActive              bool      `db:"is_active"`
	ProgressPercentage    float64   `db:"progress_percentage"`
	CreatedAt             time.Time `db:"created_at"`
}

type DailyGoalProgress struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	GoalID           int       `db:"goal_id"`
	Date             time.Time `db:"date"`
	ActualCalories   float64   `db:"actual_calories"`
	ActualProtein    float64   `db:"actual_protein"`
	ActualCarbs      float64   `db:"actual_carbs"`
	ActualFats       float64   `db:"actual_fats"`
	ActualSteps      int       `db:"actual_steps"`
	ActualWorkouts   int       `db:"actual_workouts"`
	ActualWeight     *float64  `db:"actual_weight"`
	CaloriesProgress *float64  `db:"calories_progress"`
	ProteinProgress  *float64  `db:"protein_progress"`
	CarbsProgress    *float64  `db:"carbs_progress"`
	FatsProgress     *float64  `db:"fats_progress"`
	StepsProgress    *float64  `db:"steps_progress"`
	WorkoutsProgress *float64  `db:"workouts_progress"`
	OverallProgress  float64   `db:"overall_progress"`
	IsCompleted      bool      `db:"is_completed"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Activity struct {
	ID          int          `db:"id"`
	UserID      int          `db:"user_id"`
	Kind        ActivityKind `db:"kind"`
	Value       float64      `db:"value"`
	PerformedAt time.Time    `db:"performed_at"`
}

type FoodIntake struct {
	ID       int       `db:"id"`
	UserID   int       `db:"user_id"`
	Name     string    `db:"name"`
	Calories float64   `db:"calories"`
	Protein  float64   `db:"protein"`
	Carbs    float64   `db:"carbs"`
	Fats     float64   `db:"fats"`
	EatenAt  time.Time `db:"eaten_at"`
}

// ActivityFacts are one day's aggregated activity totals.
type ActivityFacts struct {
	Steps    int
	Workouts int
	Weight   *float64
}

// NutritionFacts are one day's aggregated food-intake totals.
type NutritionFacts struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}
