package store

// Default league roster and teams. Photos left blank get the avatar
// fallback on load.

func SeedPlayers() []Player {
	return []Player{
		{ID: 1, Name: "Arjun Menon", Position: "GK", Rating: 82, BasePrice: 100, Status: StatusAvailable},
		{ID: 2, Name: "Rahul Das", Position: "CB", Rating: 78, BasePrice: 100, Status: StatusAvailable},
		{ID: 3, Name: "Vishnu Kumar", Position: "CB", Rating: 80, BasePrice: 100, Status: StatusAvailable},
		{ID: 4, Name: "Amal Raj", Position: "LB", Rating: 75, BasePrice: 100, Status: StatusAvailable},
		{ID: 5, Name: "Siddharth Nair", Position: "RB", Rating: 76, BasePrice: 100, Status: StatusAvailable},
		{ID: 6, Name: "Mohammed Shan", Position: "CM", Rating: 85, BasePrice: 100, Status: StatusAvailable},
		{ID: 7, Name: "Kevin Jose", Position: "CM", Rating: 83, BasePrice: 100, Status: StatusAvailable},
		{ID: 8, Name: "Adil Hussain", Position: "CAM", Rating: 87, BasePrice: 100, Status: StatusAvailable},
		{ID: 9, Name: "Rohan Pillai", Position: "LW", Rating: 84, BasePrice: 100, Status: StatusAvailable},
		{ID: 10, Name: "Arshad Ali", Position: "RW", Rating: 86, BasePrice: 100, Status: StatusAvailable},
		{ID: 11, Name: "Sajith Thomas", Position: "ST", Rating: 90, BasePrice: 150, Status: StatusAvailable},
		{ID: 12, Name: "Nikhil Varma", Position: "ST", Rating: 88, BasePrice: 150, Status: StatusAvailable},
		{ID: 13, Name: "Faisal Moosa", Position: "GK", Rating: 79, BasePrice: 100, Status: StatusAvailable},
		{ID: 14, Name: "Anand Srikumar", Position: "LW", Rating: 81, BasePrice: 100, Status: StatusAvailable},
		{ID: 15, Name: "Deepak Suresh", Position: "CDM", Rating: 77, BasePrice: 100, Status: StatusAvailable},
		{ID: 16, Name: "Jithin George", Position: "RW", Rating: 83, BasePrice: 100, Status: StatusAvailable},
		{ID: 17, Name: "Vineeth Mohan", Position: "CB", Rating: 74, BasePrice: 100, Status: StatusAvailable},
		{ID: 18, Name: "Sarath Nair", Position: "CM", Rating: 82, BasePrice: 100, Status: StatusAvailable},
		{ID: 19, Name: "Bibin Chacko", Position: "LB", Rating: 76, BasePrice: 100, Status: StatusAvailable},
		{ID: 20, Name: "Aswin Raj", Position: "ST", Rating: 85, BasePrice: 120, Status: StatusAvailable},
		{ID: 21, Name: "Midhun PS", Position: "CDM", Rating: 78, BasePrice: 100, Status: StatusAvailable},
		{ID: 22, Name: "Shafeeq Ali", Position: "CAM", Rating: 84, BasePrice: 100, Status: StatusAvailable},
		{ID: 23, Name: "Rohit Varma", Position: "GK", Rating: 81, BasePrice: 100, Status: StatusAvailable},
		{ID: 24, Name: "Nirmal Dev", Position: "RB", Rating: 77, BasePrice: 100, Status: StatusAvailable},
		{ID: 25, Name: "Fazil Hameed", Position: "ST", Rating: 88, BasePrice: 140, Status: StatusAvailable},
		{ID: 26, Name: "Dipin George", Position: "LW", Rating: 80, BasePrice: 100, Status: StatusAvailable},
		{ID: 27, Name: "Athul Suresh", Position: "RW", Rating: 82, BasePrice: 100, Status: StatusAvailable},
		{ID: 28, Name: "Jibin Mathew", Position: "CM", Rating: 79, BasePrice: 100, Status: StatusAvailable},
		{ID: 29, Name: "Anas Farooq", Position: "CB", Rating: 76, BasePrice: 100, Status: StatusAvailable},
		{ID: 30, Name: "Sreejith KP", Position: "ST", Rating: 86, BasePrice: 130, Status: StatusAvailable},
		{ID: 31, Name: "Alan Abraham", Position: "CAM", Rating: 83, BasePrice: 100, Status: StatusAvailable},
		{ID: 32, Name: "Rahul Mathews", Position: "CDM", Rating: 80, BasePrice: 100, Status: StatusAvailable},
		{ID: 33, Name: "Unni Krishnan", Position: "LB", Rating: 75, BasePrice: 100, Status: StatusAvailable},
		{ID: 34, Name: "Pradeep CK", Position: "CB", Rating: 77, BasePrice: 100, Status: StatusAvailable},
		{ID: 35, Name: "Sooraj Thomas", Position: "RB", Rating: 76, BasePrice: 100, Status: StatusAvailable},
		{ID: 36, Name: "Muhammed Rafi", Position: "CM", Rating: 81, BasePrice: 100, Status: StatusAvailable},
		{ID: 37, Name: "Akash Mohan", Position: "LW", Rating: 79, BasePrice: 100, Status: StatusAvailable},
		{ID: 38, Name: "Vishnu Prasad", Position: "GK", Rating: 78, BasePrice: 100, Status: StatusAvailable},
		{ID: 39, Name: "Arif Shameer", Position: "ST", Rating: 84, BasePrice: 110, Status: StatusAvailable},
		{ID: 40, Name: "Joel James", Position: "RW", Rating: 80, BasePrice: 100, Status: StatusAvailable},
	}
}

func SeedTeams() []Team {
	return []Team{
		{ID: "T1", Name: "Thunder FC", Color: "#e63946", Budget: 8000, Players: []Player{}},
		{ID: "T2", Name: "Strikers SC", Color: "#4895ef", Budget: 8000, Players: []Player{}},
		{ID: "T3", Name: "Royal Eagles", Color: "#f4a261", Budget: 8000, Players: []Player{}},
		{ID: "T4", Name: "Green Wolves", Color: "#2dc653", Budget: 8000, Players: []Player{}},
	}
}
