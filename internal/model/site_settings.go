package model

// SiteSettings 首页配置，单例文档整体读写
type SiteSettings struct {
	TextScrollContent  string `json:"textScrollContent"`
	TextScrollVelocity int    `json:"textScrollVelocity"`

	CollectionsTitle          string `json:"collectionsTitle"`
	GamingCollectionsLimit    int    `json:"gamingCollectionsLimit"`
	NonGamingCollectionsLimit int    `json:"nonGamingCollectionsLimit"`

	CircularGalleryTitle string `json:"circularGalleryTitle"`

	ProductsTitle  string `json:"productsTitle"`
	ProductsPerRow int    `json:"productsPerRow"`
	ProductsRows   int    `json:"productsRows"`

	ShowGamingSection    bool `json:"showGamingSection"`
	ShowNonGamingSection bool `json:"showNonGamingSection"`
}

// DefaultSiteSettings 后端无数据时使用的初始值
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		TextScrollContent:         "Phone Wraps  ",
		TextScrollVelocity:        5,
		CollectionsTitle:          "BROWSE ALL COLLECTIONS",
		GamingCollectionsLimit:    1,
		NonGamingCollectionsLimit: 10,
		CircularGalleryTitle:      "WELCOME TO MYSTERY WORLD",
		ProductsTitle:             "BROWSE ALL PRODUCTS",
		ProductsPerRow:            41,
		ProductsRows:              2,
		ShowGamingSection:         true,
		ShowNonGamingSection:      true,
	}
}
