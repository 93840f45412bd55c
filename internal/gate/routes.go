package gate

// View names a screen the presentation layer can show.
type View string

const (
	ViewLoading  View = "loading"
	ViewNotFound View = "not_found"

	ViewSignIn     View = "signin"
	ViewTestLogin  View = "test_login"
	ViewOnboarding View = "onboarding"
	ViewKYC        View = "kyc"

	ViewHome                  View = "home"
	ViewProfile               View = "profile"
	ViewQR                    View = "qr"
	ViewServices              View = "services"
	ViewTransactions          View = "transactions"
	ViewWallets               View = "wallets"
	ViewPresetUsers           View = "preset_users"
	ViewPartnerships          View = "partnerships"
	ViewAccessibilityDemo     View = "accessibility_demo"
	ViewLanguageDemo          View = "language_demo"
	ViewCulturalAccessibility View = "cultural_accessibility"
	ViewComponentLibrary      View = "component_library"
	ViewAdmin                 View = "admin"
	ViewSendMoney             View = "send_money"
	ViewSendMoneyAmount       View = "send_money_amount"
	ViewSendMoneyConfirm      View = "send_money_confirm"
	ViewSendMoneySuccess      View = "send_money_success"
	ViewBuyAirtime            View = "buy_airtime"
	ViewBuyAirtimeAmount      View = "buy_airtime_amount"
	ViewBuyAirtimeConfirm     View = "buy_airtime_confirm"
	ViewBuyAirtimeSuccess     View = "buy_airtime_success"
	ViewPayScan               View = "pay_scan"
	ViewPayBills              View = "pay_bills"
	ViewPayBillsProviders     View = "pay_bills_providers"
	ViewPayBillsAccount       View = "pay_bills_account"
	ViewShop                  View = "shop"
	ViewTransport             View = "transport"
)

// Route binds a path to the view it renders.
type Route struct {
	Path string `json:"path"`
	View View   `json:"view"`
}

var (
	unauthenticatedRoutes = []Route{
		{"/test-login", ViewTestLogin},
		{"/signin", ViewSignIn},
	}

	incompleteProfileRoutes = []Route{
		{"/onboarding", ViewOnboarding},
	}

	unverifiedIdentityRoutes = []Route{
		{"/kyc", ViewKYC},
	}

	fullAccessRoutes = []Route{
		{"/", ViewHome},
		{"/profile", ViewProfile},
		{"/qr", ViewQR},
		{"/services", ViewServices},
		{"/transactions", ViewTransactions},
		{"/wallets", ViewWallets},
		{"/test-login", ViewTestLogin},
		{"/signin", ViewSignIn},
		{"/onboarding", ViewOnboarding},
		{"/kyc", ViewKYC},
		{"/preset-users", ViewPresetUsers},
		{"/partnerships", ViewPartnerships},
		{"/accessibility-demo", ViewAccessibilityDemo},
		{"/language-demo", ViewLanguageDemo},
		{"/cultural-accessibility", ViewCulturalAccessibility},
		{"/component-library", ViewComponentLibrary},
		{"/admin", ViewAdmin},

		{"/send-money", ViewSendMoney},
		{"/send-money/amount", ViewSendMoneyAmount},
		{"/send-money/confirm", ViewSendMoneyConfirm},
		{"/send-money/success", ViewSendMoneySuccess},

		{"/buy-airtime", ViewBuyAirtime},
		{"/buy-airtime/amount", ViewBuyAirtimeAmount},
		{"/buy-airtime/confirm", ViewBuyAirtimeConfirm},
		{"/buy-airtime/success", ViewBuyAirtimeSuccess},

		{"/pay-scan", ViewPayScan},

		{"/pay-bills", ViewPayBills},
		{"/pay-bills/providers", ViewPayBillsProviders},
		{"/pay-bills/account", ViewPayBillsAccount},

		{"/shop", ViewShop},
		{"/transport", ViewTransport},
	}
)

// routeTable returns the routes admitted in s, with the default route first.
// Loading and unknown states admit no routes.
func routeTable(s State) []Route {
	switch s {
	case StateUnauthenticated:
		return unauthenticatedRoutes
	case StateIncompleteProfile:
		return incompleteProfileRoutes
	case StateUnverifiedIdentity:
		return unverifiedIdentityRoutes
	case StateFullAccess:
		return fullAccessRoutes
	default:
		return nil
	}
}

func lookup(routes []Route, path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
