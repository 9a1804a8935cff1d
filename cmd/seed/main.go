// Seeds the database with sample tips, schemes, and marketplace listings
// for local development and demos.
package main

import (
	"log"

	"agrismart/backend/internal/auth"
	"agrismart/backend/internal/config"
	"agrismart/backend/internal/models"
	"agrismart/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	store := storage.NewService(db, nil) // No redis needed for seeding

	seedTips(store)
	seedSchemes(store)
	seedMarketplace(store)

	log.Println("Seeding complete.")
}

func seedTips(store *storage.Service) {
	tips := []models.FarmingTip{
		{
			Title:    "Organic Fertilizer Benefits",
			Category: "Soil Management",
			Content:  "Organic fertilizers improve soil structure, increase water retention, and provide slow-release nutrients. Use compost, vermicompost, or green manure for best results.",
			Tags:     pq.StringArray{"organic", "fertilizer", "soil"},
			Language: "en",
		},
		{
			Title:    "जैविक खाद के लाभ",
			Category: "मृदा प्रबंधन",
			Content:  "जैविक उर्वरक मिट्टी की संरचना में सुधार करते हैं, पानी की अवधारण बढ़ाते हैं और धीमी गति से पोषक तत्व प्रदान करते हैं।",
			Tags:     pq.StringArray{"जैविक", "उर्वरक", "मृदा"},
			Language: "hi",
		},
		{
			Title:    "Pest Control Using Neem",
			Category: "Pest Management",
			Content:  "Neem-based pesticides are effective against 200+ pest species. Mix neem oil with water (1:20 ratio) and spray on crops every 7-10 days for prevention.",
			Tags:     pq.StringArray{"pest", "neem", "organic"},
			Language: "en",
		},
		{
			Title:    "Drip Irrigation Setup",
			Category: "Irrigation",
			Content:  "Drip irrigation saves 40-60% water compared to flood irrigation. Install drippers 30cm apart for vegetables and 60cm for fruit crops. Check filters weekly.",
			Tags:     pq.StringArray{"irrigation", "water", "drip"},
			Language: "en",
		},
		{
			Title:    "Crop Rotation Benefits",
			Category: "Farming Practices",
			Content:  "Rotate crops to prevent soil depletion and break pest cycles. Follow legumes with cereals, then vegetables. This maintains soil fertility naturally.",
			Tags:     pq.StringArray{"rotation", "soil", "fertility"},
			Language: "en",
		},
	}
	for i := range tips {
		if err := store.DB.Create(&tips[i]).Error; err != nil {
			log.Fatalf("Error seeding tip %q: %v", tips[i].Title, err)
		}
	}
	log.Printf("Seeded %d farming tips.", len(tips))
}

func seedSchemes(store *storage.Service) {
	schemes := []models.Scheme{
		{
			Name:               "PM-KISAN (Pradhan Mantri Kisan Samman Nidhi)",
			Category:           "Subsidy",
			Description:        "Direct income support of ₹6000 per year to all farmer families in three equal installments.",
			Eligibility:        "All landholding farmer families. Institutional landholders, constitutional post holders, and income taxpayers excluded.",
			Benefits:           "₹2000 every 4 months, directly transferred to bank accounts",
			ApplicationProcess: "Apply online at pmkisan.gov.in or through Common Service Centers. Required: Aadhaar, bank account, land records.",
			ContactInfo:        "Helpline: 155261 / 011-24300606, Email: pmkisan-ict@gov.in",
			State:              "All",
			IsActive:           true,
		},
		{
			Name:               "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
			Category:           "Insurance",
			Description:        "Comprehensive crop insurance covering yield losses due to natural calamities, pests, and diseases.",
			Eligibility:        "All farmers growing notified crops in notified areas",
			Benefits:           "Premium: 2% for Kharif, 1.5% for Rabi, 5% for horticulture. Government subsidizes rest.",
			ApplicationProcess: "Apply through banks, insurance companies, or Common Service Centers within crop cut-off dates.",
			ContactInfo:        "Helpline: 011-23382012, Website: pmfby.gov.in",
			State:              "All",
			IsActive:           true,
		},
		{
			Name:               "Kisan Credit Card (KCC)",
			Category:           "Loan",
			Description:        "Credit facility for farmers to meet agricultural expenses at subsidized interest rates.",
			Eligibility:        "Farmers owning land, tenant farmers, oral lessees, and sharecroppers",
			Benefits:           "Up to ₹3 lakh at 7% interest (4% with prompt repayment). Flexible credit limit.",
			ApplicationProcess: "Apply at any bank branch with land documents, Aadhaar, and identity proof.",
			ContactInfo:        "Contact local bank branches or agriculture department",
			State:              "All",
			IsActive:           true,
		},
	}
	for i := range schemes {
		if err := store.DB.Create(&schemes[i]).Error; err != nil {
			log.Fatalf("Error seeding scheme %q: %v", schemes[i].Name, err)
		}
	}
	log.Printf("Seeded %d government schemes.", len(schemes))
}

func seedMarketplace(store *storage.Service) {
	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("Error hashing demo password: %v", err)
	}
	seller := models.User{
		Name:     "Demo Farmer",
		Email:    "demo@agrismart.local",
		Password: hash,
		Role:     "farmer",
		Language: "en",
		Location: "Pune",
		FarmSize: 2.5,
	}
	if err := store.CreateUser(&seller); err != nil {
		log.Fatalf("Error seeding demo user: %v", err)
	}

	products := []models.Product{
		{
			SellerID:    seller.ID,
			Name:        "Organic Wheat",
			Category:    "Grains",
			Description: "Pesticide-free wheat from this season's harvest.",
			Price:       32,
			Unit:        "kg",
			Quantity:    500,
			IsOrganic:   true,
			Status:      "active",
		},
		{
			SellerID:    seller.ID,
			Name:        "Fresh Tomatoes",
			Category:    "Vegetables",
			Description: "Vine-ripened tomatoes, picked daily.",
			Price:       18,
			Unit:        "kg",
			Quantity:    120,
			Status:      "active",
		},
	}
	for i := range products {
		if err := store.CreateProduct(&products[i]); err != nil {
			log.Fatalf("Error seeding product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("Seeded demo seller and %d products.", len(products))
}
