package repo

import (
	"github.com/GlebRadaev/lwcoin/internal/pg"
	activityrepo "github.com/GlebRadaev/lwcoin/internal/repo/activity-repo"
	goalrepo "github.com/GlebRadaev/lwcoin/internal/repo/goal-repo"
	purchaserepo "github.com/GlebRadaev/lwcoin/internal/repo/purchase-repo"
	subscriptionrepo "github.com/GlebRadaev/lwcoin/internal/repo/subscription-repo"
	transactionrepo "github.com/GlebRadaev/lwcoin/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/lwcoin/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	SubscriptionRepo *subscriptionrepo.Repository
	PurchaseRepo     *purchaserepo.Repository
	GoalRepo         *goalrepo.Repository
	ActivityRepo     *activityrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		SubscriptionRepo: subscriptionrepo.New(conn),
		PurchaseRepo:     purchaserepo.New(conn),
		GoalRepo:         goalrepo.New(conn, txManager),
		ActivityRepo:     activityrepo.New(conn),
	}
}
