package configs

import (
	"log"

	"foodie/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemoUser creates the demo login once.
func SeedDemoUser() error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Where("email = ?", "john@gmail.com").Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := entity.User{
		Name:     "John Doe",
		Email:    "john@gmail.com",
		Password: string(hash),
		Phone:    "+1 555-0123",
		Address:  "123 Foodie Street, Flavor Town",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Println("demo user seeded (john@gmail.com / password123)")
	return nil
}

// SeedCatalog fills in browsable categories, restaurants and menu items.
func SeedCatalog() error {
	db := DB()

	categories := []entity.Category{
		{Name: "Pizza", Icon: "🍕", Color: "#FF6B35"},
		{Name: "Burger", Icon: "🍔", Color: "#FFD23F"},
		{Name: "Sushi", Icon: "🍣", Color: "#00E676"},
		{Name: "Indian", Icon: "🍛", Color: "#FF9800"},
		{Name: "Desserts", Icon: "🍰", Color: "#E040FB"},
	}
	for i := range categories {
		if err := db.FirstOrCreate(&categories[i], entity.Category{Name: categories[i].Name}).Error; err != nil {
			return err
		}
	}

	restaurants := []entity.Restaurant{
		{
			Name: "Murugan Idli Shop", Cuisine: "South Indian • Tiffin",
			Rating: 4.8, DeliveryTime: "15-25 min", DeliveryFee: 29, MinOrder: 99,
			IsFeatured: true, Address: "West Masi Street, Madurai",
			CategoryID: categories[3].ID,
		},
		{
			Name: "Amma Mess", Cuisine: "Tamil Nadu • Non-Veg",
			Rating: 4.9, DeliveryTime: "25-35 min", DeliveryFee: 39, MinOrder: 199,
			IsFeatured: true, Address: "Alwarpuram, Madurai",
			CategoryID: categories[3].ID,
		},
		{
			Name: "Slice House", Cuisine: "Italian • Pizza",
			Rating: 4.5, DeliveryTime: "20-30 min", DeliveryFee: 35, MinOrder: 149,
			Address: "KK Nagar, Madurai",
			CategoryID: categories[0].ID,
		},
	}
	for i := range restaurants {
		if err := db.FirstOrCreate(&restaurants[i], entity.Restaurant{Name: restaurants[i].Name}).Error; err != nil {
			return err
		}
	}

	menuItems := []entity.MenuItem{
		{Name: "Podi Idli", Description: "Soft idlis tossed in gunpowder", Price: 60, IsPopular: true, RestaurantID: restaurants[0].ID},
		{Name: "Ghee Pongal", Description: "Rice and moong dal with ghee", Price: 80, RestaurantID: restaurants[0].ID},
		{Name: "Masala Dosa", Description: "Crisp dosa, potato masala", Price: 90, IsPopular: true, RestaurantID: restaurants[0].ID},
		{Name: "Kari Dosai", Description: "Mutton kari on dosai", Price: 180, IsPopular: true, RestaurantID: restaurants[1].ID},
		{Name: "Mutton Chukka", Description: "Dry-fried mutton", Price: 220, RestaurantID: restaurants[1].ID},
		{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 249, IsPopular: true, RestaurantID: restaurants[2].ID},
		{Name: "Pepperoni", Description: "Loaded pepperoni", Price: 329, RestaurantID: restaurants[2].ID},
	}
	for i := range menuItems {
		err := db.FirstOrCreate(&menuItems[i], entity.MenuItem{
			Name:         menuItems[i].Name,
			RestaurantID: menuItems[i].RestaurantID,
		}).Error
		if err != nil {
			return err
		}
	}

	log.Printf("catalog seeded: %d categories, %d restaurants, %d menu items",
		len(categories), len(restaurants), len(menuItems))
	return nil
}
