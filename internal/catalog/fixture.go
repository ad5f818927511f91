package catalog

import (
	"github.com/sagarmatha/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// fixtureProducts is the built-in catalog. Order matters: it is the
// insertion order every unsorted view preserves.
var fixtureProducts = []Product{
	{
		ID:            1,
		Name:          "Professional Power Drill Set",
		Brand:         "Bosch",
		Price:         decimal.NewFromInt(5999),
		OriginalPrice: decimal.NewFromInt(7999),
		Rating:        4.8,
		Reviews:       156,
		Power:         "800W",
		Category:      enums.ProductCategoryTools,
		Image:         "/pexels-dzeninalukac-754262.jpg",
		Discount:      25,
		Description:   "Heavy-duty cordless drill with advanced battery technology and precision control for professional applications.",
		Features:      []string{"Variable Speed", "LED Light", "Keyless Chuck", "Impact Function"},
		InStock:       true,
		Badge:         "Best Seller",
		IsBestSeller:  true,
		Gallery:       []string{"/pexels-dzeninalukac-754262.jpg", "/pexels-thatguycraig000-1529745.jpg", "/pexels-dzeninalukac-754262.jpg"},
	},
	{
		ID:            2,
		Name:          "Smart LED Strip Light Kit",
		Brand:         "Philips",
		Price:         decimal.NewFromInt(2499),
		OriginalPrice: decimal.NewFromInt(3499),
		Rating:        4.6,
		Reviews:       89,
		Power:         "24W",
		Category:      enums.ProductCategoryLighting,
		Image:         "/images%20(4).jpg",
		Discount:      28,
		Description:   "Smart RGB LED strip lights with app control and voice assistant compatibility for modern home lighting.",
		Features:      []string{"RGB Colors", "App Control", "Voice Control", "5m Length"},
		InStock:       true,
		Badge:         "New",
		IsNew:         true,
		Gallery:       []string{"/images%20(4).jpg", "/images%20(1).jpg", "/images%20(4).jpg"},
	},
	{
		ID:            3,
		Name:          "Heavy Duty Circuit Breaker",
		Brand:         "Havells",
		Price:         decimal.NewFromInt(1899),
		OriginalPrice: decimal.NewFromInt(2299),
		Rating:        4.7,
		Reviews:       234,
		Power:         "32A",
		Category:      enums.ProductCategoryElectrical,
		Image:         "/download%20(1).jpg",
		Discount:      17,
		Description:   "ISI certified heavy-duty circuit breaker with advanced protection features for electrical safety.",
		Features:      []string{"MCB Protection", "Fire Resistant", "Easy Installation", "ISI Certified"},
		InStock:       true,
		Badge:         "",
		Gallery:       []string{"/download%20(1).jpg", "/download%20(1).jpg"},
	},
	{
		ID:            4,
		Name:          "Industrial Grade Welding Kit",
		Brand:         "Lincoln",
		Price:         decimal.NewFromInt(15999),
		OriginalPrice: decimal.NewFromInt(18999),
		Rating:        4.9,
		Reviews:       67,
		Power:         "200A",
		Category:      enums.ProductCategoryTools,
		Image:         "/images%20(2).jpg",
		Discount:      15,
		Description:   "Professional welding equipment with multi-process capability and digital controls for precision work.",
		Features:      []string{"MIG/TIG/Stick", "Digital Display", "Auto Voltage", "Portable Design"},
		InStock:       false,
		Badge:         "Premium",
		Gallery:       []string{"/images%20(2).jpg", "/images%20(2).jpg", "/download.jpg"},
	},
	{
		ID:            5,
		Name:          "Smart Home Switch Panel",
		Brand:         "Syska",
		Price:         decimal.NewFromInt(3299),
		OriginalPrice: decimal.NewFromInt(4199),
		Rating:        4.5,
		Reviews:       123,
		Power:         "16A",
		Category:      enums.ProductCategoryElectrical,
		Image:         "/images.jpg",
		Discount:      21,
		Description:   "WiFi-enabled smart switch panel with touch controls and voice assistant integration.",
		Features:      []string{"Touch Control", "WiFi Enabled", "Voice Control", "Timer Function"},
		InStock:       true,
		Badge:         "Smart",
		Gallery:       []string{"/images.jpg", "/images.jpg", "/images%20(1).jpg"},
	},
	{
		ID:            6,
		Name:          "High Performance Angle Grinder",
		Brand:         "Makita",
		Price:         decimal.NewFromInt(4599),
		OriginalPrice: decimal.NewFromInt(5999),
		Rating:        4.8,
		Reviews:       198,
		Power:         "1200W",
		Category:      enums.ProductCategoryTools,
		Image:         "/pexels-thatguycraig000-1529745.jpg",
		Discount:      23,
		Description:   "Professional angle grinder with anti-vibration technology and superior dust protection.",
		Features:      []string{"Anti-Vibration", "Dust Protection", "Quick Change", "Ergonomic Grip"},
		InStock:       true,
		Badge:         "",
		Gallery:       []string{"/pexels-thatguycraig000-1529745.jpg", "/pexels-thatguycraig000-1529745.jpg", "/pexels-dzeninalukac-754262.jpg"},
	},
	{
		ID:            7,
		Name:          "Solar Panel Kit 100W",
		Brand:         "Luminous",
		Price:         decimal.NewFromInt(8999),
		OriginalPrice: decimal.NewFromInt(11999),
		Rating:        4.4,
		Reviews:       45,
		Power:         "100W",
		Category:      enums.ProductCategoryElectrical,
		Image:         "/pexels-pixabay-302743.jpg",
		Discount:      25,
		Description:   "Complete solar panel system with monocrystalline technology and 25-year performance warranty.",
		Features:      []string{"Monocrystalline", "Weather Resistant", "25 Year Warranty", "Easy Setup"},
		InStock:       true,
		Badge:         "Eco",
		Gallery:       []string{"/pexels-pixabay-302743.jpg", "/pexels-pixabay-302743.jpg", "/pexels-pixabay-302743.jpg"},
	},
	{
		ID:            8,
		Name:          "Industrial Work Light LED",
		Brand:         "Osram",
		Price:         decimal.NewFromInt(1799),
		OriginalPrice: decimal.NewFromInt(2299),
		Rating:        4.6,
		Reviews:       156,
		Power:         "50W",
		Category:      enums.ProductCategoryLighting,
		Image:         "/354ed4c3de93588e08212cab7f824f97.jpg_720x720q80.jpg_.webp",
		Discount:      21,
		Description:   "Heavy-duty LED work light with tripod stand and 360-degree rotation for versatile illumination.",
		Features:      []string{"Tripod Stand", "360° Rotation", "IP65 Rated", "5000K Cool White"},
		InStock:       true,
		Badge:         "",
		Gallery:       []string{"/354ed4c3de93588e08212cab7f824f97.jpg_720x720q80.jpg_.webp", "/354ed4c3de93588e08212cab7f824f97.jpg_720x720q80.jpg_.webp"},
	},
	{
		ID:            9,
		Name:          "Digital Multimeter Pro",
		Brand:         "Fluke",
		Price:         decimal.NewFromInt(6999),
		OriginalPrice: decimal.NewFromInt(8499),
		Rating:        4.9,
		Reviews:       287,
		Power:         "N/A",
		Category:      enums.ProductCategoryTools,
		Image:         "/download.jpg",
		Discount:      18,
		Description:   "Professional digital multimeter with advanced measurement capabilities and safety ratings.",
		Features:      []string{"True RMS", "Data Logging", "Auto Range", "Safety Rated"},
		InStock:       true,
		Badge:         "Pro",
		Gallery:       []string{"/download.jpg", "/download.jpg"},
	},
	{
		ID:            10,
		Name:          "Ceiling Fan BLDC Motor",
		Brand:         "Crompton",
		Price:         decimal.NewFromInt(4299),
		OriginalPrice: decimal.NewFromInt(5599),
		Rating:        4.3,
		Reviews:       176,
		Power:         "28W",
		Category:      enums.ProductCategoryElectrical,
		Image:         "/images%20(3).jpg",
		Discount:      23,
		Description:   "Energy-efficient BLDC motor ceiling fan with remote control and variable speed settings.",
		Features:      []string{"BLDC Motor", "Remote Control", "Energy Saving", "Silent Operation"},
		InStock:       true,
		Badge:         "",
		Gallery:       []string{"/images%20(3).jpg", "/images%20(3).jpg"},
	},
	{
		ID:            11,
		Name:          "Wire Stripper Tool Set",
		Brand:         "Klein",
		Price:         decimal.NewFromInt(1299),
		OriginalPrice: decimal.NewFromInt(1699),
		Rating:        4.7,
		Reviews:       203,
		Power:         "N/A",
		Category:      enums.ProductCategoryTools,
		Image:         "/download%20(2).jpg",
		Discount:      24,
		Description:   "Professional wire stripper set with multiple gauge capacities and precision cutting edges.",
		Features:      []string{"Multi-Gauge", "Precision Cut", "Ergonomic Handle", "Professional Grade"},
		InStock:       true,
		Badge:         "",
		Gallery:       []string{"/download%20(2).jpg", "/download%20(2).jpg"},
	},
	{
		ID:            12,
		Name:          "Smart LED Bulb 9W",
		Brand:         "Philips",
		Price:         decimal.NewFromInt(899),
		OriginalPrice: decimal.NewFromInt(1199),
		Rating:        4.4,
		Reviews:       412,
		Power:         "9W",
		Category:      enums.ProductCategoryLighting,
		Image:         "/images%20(1).jpg",
		Discount:      25,
		Description:   "WiFi-enabled smart LED bulb with millions of colors and scheduling features.",
		Features:      []string{"16 Million Colors", "App Control", "Voice Control", "Scheduling"},
		InStock:       true,
		Badge:         "Smart",
		IsNew:         true,
		Gallery:       []string{"/images%20(1).jpg", "/images%20(1).jpg", "/images%20(4).jpg"},
	},
}
