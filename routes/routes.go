package routes

import (
	"bolao/controllers/account"
	"bolao/controllers/funds"
	"bolao/controllers/pool"
	"bolao/controllers/wager"
	"bolao/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", account.Register)
	app.Post("/auth/login", account.Login)

	app.Get("/pools", pool.List)
	app.Get("/pools/:id", pool.Detail)

	api := app.Group("/", middlewares.RequireAuth)
	api.Get("/me/balance", account.Balance)
	api.Get("/me/transactions", account.Transactions)
	api.Get("/me/wagers", wager.ListMine)
	api.Post("/wagers", wager.Place)
	api.Post("/funds/deposits", funds.RequestDeposit)
	api.Post("/funds/withdrawals", funds.RequestWithdrawal)

	admin := app.Group("/admin", middlewares.RequireAuth, middlewares.RequireAdmin)
	admin.Post("/pools", pool.Create)
	admin.Post("/pools/:id/settle", pool.Settle)
	admin.Post("/wagers/:id/annul", wager.Annul)
	admin.Get("/transactions/pending", funds.ListPending)
	admin.Post("/deposits/:id/approve", funds.ApproveDeposit)
	admin.Post("/deposits/:id/decline", funds.DeclineDeposit)
	admin.Post("/withdrawals/:id/approve", funds.ApproveWithdrawal)
	admin.Post("/withdrawals/:id/decline", funds.DeclineWithdrawal)
}
