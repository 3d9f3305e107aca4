package repoargs

type RepositoryName string

const (
	UserRepoName                RepositoryName = "user"
	ProductRepoName             RepositoryName = "product"
	CartRepoName                RepositoryName = "cart"
	TransactionRepoName         RepositoryName = "transaction"
	OrderItemRepoName           RepositoryName = "order_item"
	CommissionRateRepoName      RepositoryName = "commission_rate"
	AffiliateCommissionRepoName RepositoryName = "affiliate_commission"
	CouponRepoName              RepositoryName = "coupon"
)
