// Package seed holds the static constants every session starts from.
// Nothing here survives a restart; this data is the closest thing the
// system has to a schema.
package seed

import (
	"zentravel-go/internal/domain/expenses"
	"zentravel-go/internal/domain/itinerary"
	"zentravel-go/internal/domain/packing"
	"zentravel-go/internal/domain/trip"
)

const DefaultExchangeRate = 0.215 // JPY to TWD

func Users() []trip.User {
	return []trip.User{
		{ID: "u1", Name: "我 (Admin)", Avatar: "🐰", Color: "bg-pastel-pink"},
		{ID: "u2", Name: "John", Avatar: "🐻", Color: "bg-pastel-blue"},
		{ID: "u3", Name: "Mary", Avatar: "🐱", Color: "bg-butter-yellow"},
		{ID: "u4", Name: "David", Avatar: "🐶", Color: "bg-pastel-green"},
	}
}

func Expenses() []expenses.Expense {
	return []expenses.Expense{
		{ID: "1", Title: "Suica 加值", Amount: 5000, Currency: "JPY", Category: "交通", PayerID: "u1", Type: expenses.TypeShared, Date: "2026-10-20"},
		{ID: "2", Title: "燒肉晚餐", Amount: 12000, Currency: "JPY", Category: "餐飲", PayerID: "u2", Type: expenses.TypeShared, Date: "2026-10-20"},
		{ID: "3", Title: "超商零食 (自己吃)", Amount: 850, Currency: "JPY", Category: "餐飲", PayerID: "u1", OwnerID: "u1", Type: expenses.TypePersonal, Date: "2026-10-20"},
	}
}

func PackingTemplate() []packing.Category {
	return []packing.Category{
		{
			Title: "隨身重要物品",
			Items: []packing.Item{
				{ID: "p1", Label: "護照 (效期6個月以上)"},
				{ID: "p2", Label: "日幣現金 / 信用卡"},
				{ID: "p3", Label: "網卡 / Wifi機"},
				{ID: "p4", Label: "行動電源 + 線"},
				{ID: "p5", Label: "Visit Japan Web QR code"},
			},
		},
		{
			Title: "衣物穿搭",
			Items: []packing.Item{
				{ID: "c1", Label: "換洗衣物 (5套)"},
				{ID: "c2", Label: "保暖外套 (秋季溫差大)"},
				{ID: "c3", Label: "好走的鞋子"},
				{ID: "c4", Label: "睡衣"},
				{ID: "c5", Label: "貼身衣物 / 襪子"},
			},
		},
		{
			Title: "個人盥洗用品",
			Items: []packing.Item{
				{ID: "t1", Label: "牙刷牙膏"},
				{ID: "t2", Label: "洗面乳 / 卸妝"},
				{ID: "t3", Label: "化妝品 / 防曬"},
				{ID: "t4", Label: "個人藥品 / 保健品"},
				{ID: "t5", Label: "毛巾 / 浴巾"},
			},
		},
		{
			Title: "雜物區",
			Items: []packing.Item{
				{ID: "m1", Label: "充電器 / 轉接頭"},
				{ID: "m2", Label: "雨傘 / 雨衣"},
				{ID: "m3", Label: "塑膠袋 (裝髒衣)"},
				{ID: "m4", Label: "筆 / 筆記本"},
			},
		},
	}
}

func PreTripNotes() []trip.PreTripNote {
	return []trip.PreTripNote{
		{ID: "n1", Title: "入境須知", Content: "記得填寫 Visit Japan Web，一人一個 QR Code，截圖存在手機備用。"},
		{ID: "n2", Title: "電壓插座", Content: "日本電壓100V，插座為雙孔扁型（跟台灣一樣），不需轉接頭。"},
		{ID: "n3", Title: "交通卡", Content: "iPhone 使用者可直接將 Suica 加到 Apple Wallet，用 Apple Pay 儲值。"},
	}
}

func Itinerary() []itinerary.Day {
	return []itinerary.Day{
		{
			DayID:           1,
			DayTitle:        "Day 1: 東京抵達與新宿夜遊",
			DateStr:         "2026-10-20 (二)",
			WeatherForecast: "多雲 16°C",
			WeatherIcon:     "☁️",
			Activities: []itinerary.Activity{
				{
					ID:            "d1-1",
					Time:          "08:50",
					Title:         "出發：桃園機場 (TPE)",
					Location:      "Taoyuan International Airport",
					Description:   "搭乘長榮航空 BR198 前往東京成田。記得提早2.5小時抵達機場辦理報到。",
					Type:          itinerary.ActivityFlight,
					URL:           "https://www.evaair.com/",
					Highlights:    []string{"BR198", "T2航廈"},
					TransportMode: itinerary.TransportNone,
				},
				{
					ID:             "d1-2",
					Time:           "14:30",
					Title:          "成田機場 (NRT) & N'EX",
					Location:       "Narita Airport Station",
					Description:    "抵達東京！領取 JR Pass 與 Suica 卡，搭乘成田特快直奔新宿。",
					Type:           itinerary.ActivityTransport,
					Highlights:     []string{"領取周遊券", "購買Suica"},
					TransportMode:  itinerary.TransportFlight,
					TransportLabel: "飛行 3hr 25m",
				},
				{
					ID:             "d1-3",
					Time:           "18:00",
					Title:          "Hotel Gracery Shinjuku",
					Location:       "Hotel Gracery Shinjuku",
					Description:    "先到飯店辦理入住放行李。這就是著名的哥吉拉飯店！",
					Type:           itinerary.ActivityOther,
					URL:            "https://gracery.com/shinjuku/",
					Highlights:     []string{"Check-in", "哥吉拉"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "N'EX 特快 80分",
				},
				{
					ID:             "d1-4",
					Time:           "19:30",
					Title:          "燒肉敘敘苑",
					Location:       "Jojoen Shinjuku",
					Description:    "享受高品質日式燒肉，欣賞新宿夜景，牛舌與橫膈膜是必點美味。",
					Type:           itinerary.ActivityFood,
					URL:            "https://www.jojoen.co.jp/",
					Highlights:     []string{"高級燒肉", "夜景"},
					TransportMode:  itinerary.TransportWalk,
					TransportLabel: "步行 5分",
				},
			},
			Accommodation: &itinerary.Accommodation{
				Name:    "Hotel Gracery Shinjuku",
				Address: "東京都新宿區歌舞伎町1-19-1",
				Phone:   "+81-3-6833-1111",
			},
		},
		{
			DayID:           2,
			DayTitle:        "Day 2: 富士山河口湖絕景",
			DateStr:         "2026-10-21 (三)",
			WeatherForecast: "晴時多雲 14°C",
			WeatherIcon:     "🌤️",
			Activities: []itinerary.Activity{
				{
					ID:             "d2-1",
					Time:           "08:30",
					Title:          "新宿站 (富士回遊)",
					Location:       "Shinjuku Station",
					Description:    "搭乘每日限量的直達特急「富士回遊」前往河口湖，省去轉車麻煩。",
					Type:           itinerary.ActivityTransport,
					Highlights:     []string{"指定席", "富士回遊3號"},
					TransportMode:  itinerary.TransportWalk,
					TransportLabel: "步行前往車站",
				},
				{
					ID:             "d2-2",
					Time:           "11:00",
					Title:          "下吉田 - 新倉山淺間公園",
					Location:       "Chureito Pagoda",
					Description:    "拍攝明信片經典場景：五重塔與富士山的合影。需要爬398階樓梯！",
					Type:           itinerary.ActivitySightseeing,
					URL:            "https://fujiyoshida.net/en/778",
					Highlights:     []string{"五重塔", "必拍絕景"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "富士回遊 1hr 40m",
				},
				{
					ID:             "d2-3",
					Time:           "13:30",
					Title:          "ほうとう不動 (午餐)",
					Location:       "Hoto Fudo, Kawaguchiko",
					Description:    "品嚐山梨縣著名的鄉土料理「餺飥麵」，濃郁的味噌南瓜湯底。",
					Type:           itinerary.ActivityFood,
					URL:            "http://www.houtou-fudo.jp/",
					Highlights:     []string{"必吃鄉土料理", "不動麵"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "電車+步行 20分",
				},
				{
					ID:             "d2-4",
					Time:           "15:30",
					Title:          "天上山公園纜車",
					Location:       "Mt. Fuji Panoramic Ropeway",
					Description:    "搭乘纜車上山，從高處眺望富士山與河口湖全景，敲響天上的鐘。",
					Type:           itinerary.ActivitySightseeing,
					URL:            "https://www.mtfujiropeway.jp/",
					Highlights:     []string{"狸貓茶屋", "絕美視角"},
					TransportMode:  itinerary.TransportBus,
					TransportLabel: "周遊巴士 15分",
				},
			},
			Accommodation: &itinerary.Accommodation{
				Name:    "Fuji Lake Hotel",
				Address: "山梨県南都留郡富士河口湖町船津1",
				Phone:   "+81-555-72-2209",
			},
		},
		{
			DayID:           3,
			DayTitle:        "Day 3: 忍野八海與Outlet",
			DateStr:         "2026-10-22 (四)",
			WeatherForecast: "晴 15°C",
			WeatherIcon:     "☀️",
			Activities: []itinerary.Activity{
				{
					ID:             "d3-1",
					Time:           "10:00",
					Title:          "忍野八海",
					Location:       "Oshino Hakkai",
					Description:    "富士山融雪形成的八個清澈池塘，水質清冽甘甜，被譽為「神的泉水」。",
					Type:           itinerary.ActivitySightseeing,
					URL:            "http://www.vill.oshino.yamanashi.jp/8lake.html",
					Highlights:     []string{"名水百選", "草餅"},
					TransportMode:  itinerary.TransportBus,
					TransportLabel: "巴士 25分",
				},
				{
					ID:             "d3-2",
					Time:           "14:00",
					Title:          "御殿場 Premium Outlets",
					Location:       "Gotemba Premium Outlets",
					Description:    "日本最大的 Outlet，店鋪數量眾多。可以一邊購物一邊欣賞富士山美景。",
					Type:           itinerary.ActivityShopping,
					URL:            "https://www.premiumoutlets.co.jp/gotemba/",
					Highlights:     []string{"歐美品牌", "富士山景"},
					TransportMode:  itinerary.TransportBus,
					TransportLabel: "巴士 45分",
				},
				{
					ID:             "d3-3",
					Time:           "18:00",
					Title:          "箱根湯本溫泉",
					Location:       "Hakone Yumoto",
					Description:    "抵達箱根門戶，入住溫泉旅館，享受著名的箱根七湯。",
					Type:           itinerary.ActivityOther,
					Highlights:     []string{"溫泉", "懷石料理"},
					TransportMode:  itinerary.TransportBus,
					TransportLabel: "高速巴士 50分",
				},
			},
			Accommodation: &itinerary.Accommodation{
				Name:    "Hakone Yumoto Onsen Hotel",
				Address: "神奈川県足柄下郡箱根町湯本",
				Phone:   "+81-460-85-XXXX",
			},
		},
		{
			DayID:           4,
			DayTitle:        "Day 4: 箱根海賊船與返京",
			DateStr:         "2026-10-23 (五)",
			WeatherForecast: "陰 13°C",
			WeatherIcon:     "☁️",
			Activities: []itinerary.Activity{
				{
					ID:             "d4-1",
					Time:           "10:00",
					Title:          "大涌谷",
					Location:       "Owakudani",
					Description:    "箱根著名的火山地熱景觀，空氣中瀰漫著硫磺味。必吃延年益壽的「黑蛋」。",
					Type:           itinerary.ActivitySightseeing,
					Highlights:     []string{"黑蛋", "火山地貌"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "登山電車+纜車",
				},
				{
					ID:             "d4-2",
					Time:           "13:00",
					Title:          "蘆之湖海賊船",
					Location:       "Lake Ashi Sightseeing Cruise",
					Description:    "搭乘華麗的海賊船遊覽蘆之湖，天氣好時可看見富士山倒映在湖面上。",
					Type:           itinerary.ActivityTransport,
					URL:            "https://www.hakone-kankosen.co.jp/",
					Highlights:     []string{"海賊船", "水中鳥居"},
					TransportMode:  itinerary.TransportWalk,
					TransportLabel: "纜車桃源台站",
				},
				{
					ID:             "d4-3",
					Time:           "17:00",
					Title:          "浪漫特快 (Romancecar)",
					Location:       "Hakone-Yumoto Station",
					Description:    "搭乘舒適的浪漫特快返回新宿。可以在車上享用車站便當。",
					Type:           itinerary.ActivityTransport,
					Highlights:     []string{"展望席", "舒適回程"},
					TransportMode:  itinerary.TransportBus,
					TransportLabel: "巴士回湯本",
				},
				{
					ID:             "d4-4",
					Time:           "19:00",
					Title:          "上野阿美橫丁",
					Location:       "Ameyoko",
					Description:    "東京最具庶民氣息的商店街，藥妝、零食、乾貨應有盡有。",
					Type:           itinerary.ActivityShopping,
					Highlights:     []string{"二木菓子", "藥妝"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "小田急線+山手線",
				},
			},
			Accommodation: &itinerary.Accommodation{
				Name:    "MIMARU TOKYO UENO",
				Address: "東京都台東區上野7-8-3",
				Phone:   "+81-3-1234-5678",
			},
		},
		{
			DayID:           5,
			DayTitle:        "Day 5: 澀谷潮流與返家",
			DateStr:         "2026-10-24 (六)",
			WeatherForecast: "晴 18°C",
			WeatherIcon:     "☀️",
			Activities: []itinerary.Activity{
				{
					ID:             "d5-1",
					Time:           "10:00",
					Title:          "Shibuya Sky",
					Location:       "SHIBUYA SKY",
					Description:    "澀谷新地標，擁有360度露天展望台。可以俯瞰著名的澀谷十字路口。",
					Type:           itinerary.ActivitySightseeing,
					URL:            "https://www.shibuya-scramble-square.com/sky/",
					Highlights:     []string{"高空美景", "網美打卡"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "山手線 15分",
				},
				{
					ID:             "d5-2",
					Time:           "12:30",
					Title:          "美登利壽司",
					Location:       "Midori Sushi Shibuya",
					Description:    "CP值極高的人氣壽司店，食材新鮮份量大。",
					Type:           itinerary.ActivityFood,
					URL:            "https://www.sushinomidori.co.jp/",
					Highlights:     []string{"超長穴子魚", "蟹膏沙拉"},
					TransportMode:  itinerary.TransportWalk,
					TransportLabel: "步行 5分",
				},
				{
					ID:             "d5-3",
					Time:           "16:00",
					Title:          "成田機場 (NRT) 報到",
					Location:       "Narita International Airport",
					Description:    "搭乘 Skyliner 前往機場。最後免稅店衝刺，準備回家。",
					Type:           itinerary.ActivityTransport,
					Highlights:     []string{"Skyliner", "免稅店"},
					TransportMode:  itinerary.TransportTrain,
					TransportLabel: "Skyliner 45分",
				},
				{
					ID:             "d5-4",
					Time:           "20:40",
					Title:          "返程：桃園機場 (TPE)",
					Location:       "Taoyuan International Airport",
					Description:    "搭乘長榮航空 BR197 返回溫暖的家。",
					Type:           itinerary.ActivityFlight,
					URL:            "https://www.evaair.com/",
					Highlights:     []string{"BR197", "平安抵達"},
					TransportMode:  itinerary.TransportFlight,
					TransportLabel: "飛行 3hr 55m",
				},
			},
		},
	}
}
