package models

// ShippingZone is one delivery region with its pricing. Cities carries a
// comma-separated list; a ShippingCost of 0 means delivery is free and a
// FreeShippingMinimum of 0 means no threshold applies.
type ShippingZone struct {
	BaseModel
	ZoneName            string  `json:"zoneName"`
	Cities              string  `json:"cities"`
	DeliveryTime        string  `json:"deliveryTime"`
	ShippingCost        float64 `json:"shippingCost"`
	FreeShippingMinimum float64 `json:"freeShippingMinimum"`
	IsActive            bool    `json:"isActive"`
}

// ShippingContent is the singleton shipping/returns page copy.
type ShippingContent struct {
	BaseModel
	SingletonKey string `gorm:"uniqueIndex;not null" json:"-"`

	PageTitle string `json:"pageTitle"`
	IntroText string `json:"introText"`

	FreeShippingEnabled bool    `json:"freeShippingEnabled"`
	FreeShippingMinimum float64 `json:"freeShippingMinimum"`
	FreeShippingText    string  `json:"freeShippingText"`

	// Comma-separated carrier names.
	ShippingCompanies string `json:"shippingCompanies"`

	ReturnPolicy    string `json:"returnPolicy"`
	ExchangePolicy  string `json:"exchangePolicy"`
	PackagingInfo   string `json:"packagingInfo"`
	ShippingSupport string `json:"shippingSupport"`
}

// DefaultDeliveryTime is the fallback delivery estimate for new zones.
const DefaultDeliveryTime = "2-3 أيام عمل"

// ShippingSingletonKey is the fixed identity of the shipping-content document.
const ShippingSingletonKey = "shipping"

// ShippingContentDefaults returns the fallback page copy used when no row
// exists yet.
func ShippingContentDefaults() ShippingContent {
	return ShippingContent{
		SingletonKey:        ShippingSingletonKey,
		PageTitle:           "الشحن والتوصيل",
		IntroText:           "نوفر خدمة توصيل سريعة وآمنة لجميع مناطق المملكة العربية السعودية",
		FreeShippingEnabled: true,
		FreeShippingMinimum: 300,
		FreeShippingText:    "شحن مجاني للطلبات فوق",
		ShippingCompanies:   "SMSA, أرامكس, DHL",
		ReturnPolicy:        "يمكنك استرجاع المنتج خلال 7 أيام من تاريخ الاستلام في حالة وجود عيب بالمنتج",
		ExchangePolicy:      "يمكنك استبدال المنتج خلال 7 أيام من تاريخ الاستلام",
		PackagingInfo:       "نحرص على تغليف منتجاتنا بعناية فائقة للحفاظ على جودتها",
	}
}
