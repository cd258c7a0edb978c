package models

// SeedBooks 启动时加载的初始目录数据
// 与线上 Bukukula 精选书单保持一致
func SeedBooks() []Book {
	return []Book{
		{
			ID:          1,
			Title:       "Filosofi Teras",
			Author:      "Henry Manampiring",
			Price:       98000,
			Category:    "Self Improvement",
			Rating:      4.8,
			ReviewCount: 3240,
			IsPopular:   true,
			Description: "Sebuah pengantar populer tentang filsafat Stoisisme. Buku ini menjelaskan bagaimana pola pikir Stoic dapat membantu kita mengatasi emosi negatif dan menghasilkan mental yang tangguh di masa kini.",
			Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&q=80&w=800",
			AffiliateLinks: AffiliateLinks{
				Shopee:    "https://shopee.co.id",
				Tokopedia: "https://tokopedia.com",
			},
		},
		{
			ID:          2,
			Title:       "Laut Bercerita",
			Author:      "Leila S. Chudori",
			Price:       115000,
			Category:    "Fiksi Sejarah",
			Rating:      4.9,
			ReviewCount: 5102,
			IsPopular:   true,
			Description: "Novel yang mengangkat tema persahabatan, cinta, keluarga, dan kehilangan di era reformasi 1998. Kisah yang mengharukan tentang mereka yang hilang dan mereka yang ditinggalkan.",
			Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?auto=format&fit=crop&q=80&w=800",
			AffiliateLinks: AffiliateLinks{
				Shopee: "https://shopee.co.id",
				Lazada: "https://lazada.co.id",
				TikTok: "https://tiktok.com",
			},
		},
		{
			ID:          3,
			Title:       "Atomic Habits",
			Author:      "James Clear",
			Price:       108000,
			Category:    "Self Improvement",
			Rating:      4.7,
			ReviewCount: 8900,
			IsPopular:   true,
			Description: "Perubahan kecil yang memberikan hasil luar biasa. Buku ini menawarkan kerangka kerja terbukti untuk menjadi 1% lebih baik setiap hari.",
			Image:       "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&q=80&w=800",
			AffiliateLinks: AffiliateLinks{
				Tokopedia: "https://tokopedia.com",
				TikTok:    "https://tiktok.com",
			},
		},
		{
			ID:          4,
			Title:       "Dunia Sophie",
			Author:      "Jostein Gaarder",
			Price:       145000,
			Category:    "Filsafat",
			Rating:      4.5,
			ReviewCount: 1200,
			Description: "Novel misteri tentang sejarah filsafat. Sophie Amundsen, seorang gadis berusia 14 tahun, mendapat surat misterius yang menanyakan 'Siapa kamu?' dan 'Dari mana dunia berasal?'.",
			Image:       "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?auto=format&fit=crop&q=80&w=800",
			AffiliateLinks: AffiliateLinks{
				Shopee:    "https://shopee.co.id",
				Tokopedia: "https://tokopedia.com",
				Lazada:    "https://lazada.co.id",
			},
		},
		{
			ID:          5,
			Title:       "Bumi Manusia",
			Author:      "Pramoedya Ananta Toer",
			Price:       135000,
			Category:    "Sastra Klasik",
			Rating:      4.9,
			ReviewCount: 4500,
			Description: "Kisah Minke, pribumi di zaman kolonial Belanda, yang berjuang melawan ketidakadilan hukum dan adat istiadat. Bagian pertama dari Tetralogi Buru.",
			Image:       "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?auto=format&fit=crop&q=80&w=800",
			AffiliateLinks: AffiliateLinks{
				Shopee:    "https://shopee.co.id",
				Tokopedia: "https://tokopedia.com",
			},
		},
		{
			ID:          6,
			Title:       "Rich Dad Poor Dad",
			Author:      "Robert T. Kiyosaki",
			Price:       85000,
			Category:    "Keuangan",
			Rating:      4.6,
			ReviewCount: 3100,
			Description: "Apa yang diajarkan orang kaya pada anak-anak mereka tentang uang yang tidak diajarkan oleh orang miskin dan kelas menengah.",
			Image:       "https://images.unsplash.com/photo-1553729459-efe14ef6055d?auto=format&fit=crop&q=80&w=800",
			AffiliateLinks: AffiliateLinks{
				Lazada: "https://lazada.co.id",
				TikTok: "https://tiktok.com",
			},
		},
	}
}
