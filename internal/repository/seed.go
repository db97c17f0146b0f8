package repository

import "github.com/tirtadhi/ZOEHotel/internal/model"

// SeedRooms returns the default room catalog. Prices are nightly rates
// in rupiah. The Deluxe King Room is seeded unavailable so the booking
// flow's availability rejection is reachable with stock data.
func SeedRooms() []model.Room {
	return []model.Room{
		{
			ID:          "1",
			Name:        "Standard Single Room",
			Description: "Cozy room perfect for solo travelers. Features a comfortable single bed, work desk, and modern amenities.",
			Price:       500000,
			Capacity:    1,
			Size:        20,
			BedType:     "Single Bed",
			Images: []string{
				"https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800",
				"https://images.unsplash.com/photo-1618773928121-c32242e63f39?w=800",
			},
			Amenities:    []string{"Free Wi-Fi", "Air Conditioning", "TV", "Mini Fridge", "Work Desk"},
			Availability: true,
			Rating:       4.5,
			Reviews:      128,
			Category:     model.CategoryStandard,
		},
		{
			ID:          "2",
			Name:        "Deluxe Double Room",
			Description: "Spacious double room with elegant design and premium amenities. Perfect for couples or business travelers.",
			Price:       850000,
			Capacity:    2,
			Size:        30,
			BedType:     "Queen Bed",
			Images: []string{
				"https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800",
			},
			Amenities:    []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Mini Bar", "Coffee Maker", "Bathtub"},
			Availability: true,
			Rating:       4.8,
			Reviews:      256,
			Category:     model.CategoryDeluxe,
		},
		{
			ID:          "3",
			Name:        "Family Suite",
			Description: "Large family suite with separate living area. Ideal for families with children, featuring two bedrooms.",
			Price:       1500000,
			Capacity:    4,
			Size:        50,
			BedType:     "1 King + 2 Single Beds",
			Images: []string{
				"https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800",
			},
			Amenities:    []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Kitchenette", "Washing Machine", "Dining Area"},
			Availability: true,
			Rating:       4.9,
			Reviews:      189,
			Category:     model.CategoryFamily,
		},
		{
			ID:          "4",
			Name:        "Executive Suite",
			Description: "Luxurious executive suite with panoramic city views. Premium furnishings and exclusive amenities.",
			Price:       2500000,
			Capacity:    2,
			Size:        60,
			BedType:     "King Bed",
			Images: []string{
				"https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800",
			},
			Amenities:    []string{"Free Wi-Fi", "Air Conditioning", "55\" Smart TV", "Mini Bar", "Espresso Machine", "Jacuzzi", "Butler Service"},
			Availability: true,
			Rating:       5.0,
			Reviews:      94,
			Category:     model.CategorySuite,
		},
		{
			ID:          "5",
			Name:        "Standard Twin Room",
			Description: "Comfortable twin room perfect for friends traveling together. Two single beds with modern amenities.",
			Price:       700000,
			Capacity:    2,
			Size:        25,
			BedType:     "2 Single Beds",
			Images: []string{
				"https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800",
			},
			Amenities:    []string{"Free Wi-Fi", "Air Conditioning", "TV", "Mini Fridge", "Safe Box"},
			Availability: true,
			Rating:       4.6,
			Reviews:      167,
			Category:     model.CategoryStandard,
		},
		{
			ID:          "6",
			Name:        "Deluxe King Room",
			Description: "Premium king room with modern design and city views. Perfect for a romantic getaway.",
			Price:       1200000,
			Capacity:    2,
			Size:        35,
			BedType:     "King Bed",
			Images: []string{
				"https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800",
			},
			Amenities:    []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Mini Bar", "Nespresso Machine", "Rain Shower"},
			Availability: false,
			Rating:       4.7,
			Reviews:      203,
			Category:     model.CategoryDeluxe,
		},
	}
}

// SeedBankAccounts returns the destination accounts shown for manual
// bank transfers.
func SeedBankAccounts() []model.BankAccount {
	return []model.BankAccount{
		{Bank: "BCA", AccountNumber: "1234567890", AccountName: "PT ZOE Hotel"},
		{Bank: "Mandiri", AccountNumber: "0987654321", AccountName: "PT ZOE Hotel"},
		{Bank: "BNI", AccountNumber: "5555666677", AccountName: "PT ZOE Hotel"},
	}
}

// EWalletOptions lists the e-wallet apps that can scan a QRIS code.
func EWalletOptions() []string {
	return []string{"GoPay", "OVO", "DANA", "ShopeePay", "LinkAja", "Mobile Banking"}
}
