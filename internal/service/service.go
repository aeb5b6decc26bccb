package service

import (
	"github.com/GlebRadaev/lwcoin/internal/ai"
	"github.com/GlebRadaev/lwcoin/internal/config"
	"github.com/GlebRadaev/lwcoin/internal/domain"
	aihandlers "github.com/GlebRadaev/lwcoin/internal/handlers/ai"
	"github.com/GlebRadaev/lwcoin/internal/handlers/auth"
	"github.com/GlebRadaev/lwcoin/internal/handlers/coins"
	"github.com/GlebRadaev/lwcoin/internal/handlers/goals"
	"github.com/GlebRadaev/lwcoin/internal/handlers/purchases"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/GlebRadaev/lwcoin/internal/storevalidator"
	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	pkgauth "github.com/GlebRadaev/lwcoin/pkg/auth"

	"github.com/GlebRadaev/lwcoin/internal/repo"
	authservice "github.com/GlebRadaev/lwcoin/internal/service/authservice"
	coinservice "github.com/GlebRadaev/lwcoin/internal/service/coinservice"
	goalservice "github.com/GlebRadaev/lwcoin/internal/service/goalservice"
	purchaseservice "github.com/GlebRadaev/lwcoin/internal/service/purchaseservice"
)

type Services struct {
	AuthService     auth.Service
	CoinService     coins.Service
	PurchaseService purchases.Service
	GoalService     goals.Service
	AIWallet        aihandlers.Wallet
	AIProvider      aihandlers.Provider
	Tokens          pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config, client clients.HTTPClientI) *Services {
	opts := coinservice.DefaultOptions()
	opts.MonthlyFreeCoins = decimal.NewFromInt(cfg.MonthlyFreeCoins)
	opts.RegistrationBonus = decimal.NewFromInt(cfg.RegistrationBonus)
	opts.ReferralBonus = decimal.NewFromInt(cfg.ReferralBonus)

	tokens := pkgauth.NewJWTService(cfg.JWTSecret)
	coinService := coinservice.New(repo.UserRepo, repo.SubscriptionRepo, repo.TransactionRepo, txManager, opts)
	authService := authservice.New(repo.UserRepo, coinService, &pkgauth.HashService{}, tokens)
	purchaseService := purchaseservice.New(repo.PurchaseRepo, repo.UserRepo, coinService, txManager,
		receiptValidators(cfg.StoreValidatorAddress, cfg.StoreSandbox, client))
	goalService := goalservice.New(repo.GoalRepo, repo.ActivityRepo, repo.UserRepo, txManager)

	return &Services{
		AuthService:     authService,
		CoinService:     coinService,
		PurchaseService: purchaseService,
		GoalService:     goalService,
		AIWallet:        coinService,
		AIProvider:      ai.New(cfg.AIProviderAddress, client),
		Tokens:          tokens,
	}
}

// receiptValidators uses the sandbox validator only when it is enabled
// explicitly. Without an address every receipt is refused.
func receiptValidators(address string, sandbox bool, client clients.HTTPClientI) map[domain.Platform]purchaseservice.ReceiptValidator {
	platforms := []domain.Platform{domain.PlatformGoogle, domain.PlatformApple}
	validators := make(map[domain.Platform]purchaseservice.ReceiptValidator, len(platforms))

	var fallback purchaseservice.ReceiptValidator = storevalidator.Unavailable{}
	switch {
	case address != "":
		fallback = nil
	case sandbox:
		zap.L().Warn("store sandbox enabled, receipts are accepted without validation")
		fallback = storevalidator.Sandbox{}
	default:
		zap.L().Warn("STORE_VALIDATOR_ADDRESS is not set, store purchases will be refused")
	}

	for _, platform := range platforms {
		if fallback != nil {
			validators[platform] = fallback
			continue
		}
		validators[platform] = storevalidator.NewGateway(address, platform, client)
	}
	return validators
}
