package storage

// Имена функций БД. Весь доступ к данным идет только через них,
// прямых запросов к таблицам приложение не выполняет.
const (
	procProductsGetFeatured = "sp_products_get_featured"
	procProductsGetTrending = "sp_products_get_trending"
	procProductsGetAll      = "sp_products_get_all"
	procProductUpsert       = "sp_product_upsert"

	procCategoriesGetAll = "sp_categories_get_all"

	procHeroContentGet    = "sp_hero_content_get"
	procHeroContentUpsert = "sp_hero_content_upsert"

	procPaymentMethodsGetAll = "sp_payment_methods_get_all"
	procPaymentMethodUpsert  = "sp_payment_method_upsert"

	procDeliveryOptionsGetAll = "sp_delivery_options_get_all"
	procDeliveryOptionUpsert  = "sp_delivery_option_upsert"

	procAdminDashboardStats = "sp_admin_dashboard_get_stats"

	procOrderCreate = "sp_order_create"
)
