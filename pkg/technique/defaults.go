package technique

// defaultTechniques is the built-in content used when no techniques file is
// configured.
var defaultTechniques = []Technique{
	{
		Name:   "Mirroring",
		Points: 5,
		Examples: []string{
			"Owner: 'I'm not interested in selling right now.' You: 'Not interested in selling right now?'",
			"Owner: 'The cap rates in this area seem too low.' You: 'The cap rates seem too low?'",
			"Owner: 'We're considering a 1031 exchange.' You: 'Considering a 1031 exchange?'",
			"Owner: 'Our occupancy rates have been fluctuating lately.' You: 'Your occupancy rates have been fluctuating?'",
			"Owner: 'I'm worried about the new rent control laws.' You: 'Worried about the new rent control laws?'",
			"Owner: 'The market seems overvalued right now.' You: 'The market seems overvalued?'",
			"Owner: 'We're looking to expand our portfolio.' You: 'Looking to expand your portfolio?'",
			"Owner: 'The property needs significant renovations.' You: 'Significant renovations?'",
			"Owner: 'We're concerned about interest rate hikes.' You: 'Concerned about interest rate hikes?'",
			"Owner: 'The NOI has been declining.' You: 'The NOI has been declining?'",
		},
	},
	{
		Name:   "Labeling",
		Points: 10,
		Examples: []string{
			"Owner: 'I've had five brokers call me this week.' You: 'It sounds like you're tired of being pitched.'",
			"Owner: 'My family built this building.' You: 'It seems like this property means a lot more to you than the numbers.'",
			"Owner: 'The last sale in the area fell through at closing.' You: 'It sounds like you've been burned by a deal before.'",
			"Owner: 'I don't even know what it's worth anymore.' You: 'It seems like the market has made pricing feel uncertain.'",
			"Owner: 'My tenants have been with me for twenty years.' You: 'It sounds like you care about what happens to your tenants.'",
		},
	},
	{
		Name:   "Calibrated Questions",
		Points: 10,
		Examples: []string{
			"You: 'What would need to happen for a sale to make sense for you?'",
			"You: 'How would you like to see the proceeds of a sale put to work?'",
			"You: 'What's the biggest challenge you're facing with the property right now?'",
			"You: 'How does the timing of a 1031 exchange affect your plans?'",
			"You: 'What would an ideal buyer look like to you?'",
		},
	},
	{
		Name:   "Accusation Audit",
		Points: 15,
		Examples: []string{
			"You: 'You probably think I'm just another broker trying to get a listing.'",
			"You: 'You're likely wondering why you should trust a stranger with your biggest asset.'",
			"You: 'I'm sure it feels like I'm calling at the worst possible time.'",
			"You: 'You might think I'm going to lowball you on price.'",
		},
	},
}

// Default returns the built-in technique table.
func Default() *Table {
	t, err := NewTable(defaultTechniques...)
	if err != nil {
		panic("technique: invalid built-in table: " + err.Error())
	}
	return t
}
