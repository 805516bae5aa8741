package seed

type person struct {
	firstName string
	lastName  string
}

var indianCities = []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune", "Ahmedabad", "Jaipur", "Surat"}

var platforms = []string{"YouTube", "Instagram", "Twitter", "TikTok", "LinkedIn"}

var audienceReach = []string{"Local", "Regional", "National", "International"}

var budgets = []string{"₹50K-₹1L", "₹1L-₹2L", "₹2L-₹10L", "₹10L-₹50L", "₹50L+"}

var teamSizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

var creatorNames = []person{
	{"Priya", "Sharma"}, {"Rahul", "Verma"}, {"Ananya", "Gupta"}, {"Arjun", "Reddy"}, {"Sneha", "Patel"},
	{"Vikram", "Singh"}, {"Isha", "Mehta"}, {"Rohan", "Kumar"}, {"Kavya", "Nair"}, {"Aditya", "Joshi"},
	{"Diya", "Kapoor"}, {"Karan", "Malhotra"}, {"Riya", "Desai"}, {"Siddharth", "Iyer"}, {"Meera", "Chopra"},
	{"Aarav", "Agarwal"}, {"Tara", "Bose"}, {"Vihaan", "Rao"}, {"Zara", "Khan"}, {"Ishaan", "Pandey"},
	{"Anvi", "Saxena"}, {"Ayaan", "Menon"}, {"Sara", "Bhatt"}, {"Reyansh", "Shetty"}, {"Myra", "Pillai"},
}

var sponsorNames = []person{
	{"Amit", "Shah"}, {"Neha", "Bansal"}, {"Rajesh", "Khanna"}, {"Pooja", "Sinha"}, {"Manish", "Tiwari"},
	{"Deepa", "Yadav"}, {"Suresh", "Reddy"}, {"Anjali", "Kulkarni"}, {"Vivek", "Mishra"}, {"Shruti", "Jain"},
	{"Nikhil", "Dubey"}, {"Preeti", "Chauhan"}, {"Sandeep", "Arora"}, {"Kavita", "Bhatia"}, {"Ashok", "Tripathi"},
	{"Sunita", "Goyal"}, {"Prakash", "Nambiar"}, {"Rekha", "Dutta"}, {"Manoj", "Hegde"}, {"Geeta", "Subramanian"},
	{"Ravi", "Krishnan"}, {"Lakshmi", "Venkat"}, {"Harish", "Balaji"}, {"Usha", "Ramesh"}, {"Dinesh", "Mohan"},
}

var companies = []string{
	"TechVista Solutions", "BrandCraft India", "Digital Nexus", "Innovate Hub",
	"MarketPro Ventures", "Creative Minds Co", "Growth Catalyst", "Brand Builders",
	"Social Spark Agency", "Influence Network", "Content Kings", "Viral Ventures",
	"Engage Media", "Trend Setters Inc", "Impact Marketing", "Vision Brands",
	"Momentum Digital", "Amplify Solutions", "Connect Hub", "Reach Media",
	"Boost Brands", "Prime Marketing", "Elite Ventures", "Apex Digital",
	"Summit Brands",
}

var bios = []string{
	"Passionate about creating engaging content and building meaningful connections.",
	"Digital storyteller with a love for authentic brand partnerships.",
	"Helping brands connect with their audience through creative campaigns.",
	"Content creator focused on lifestyle, tech, and travel.",
	"Building a community of engaged followers through quality content.",
	"Marketing professional with expertise in influencer collaborations.",
	"Creating impactful content that resonates with audiences.",
	"Brand strategist helping companies grow their digital presence.",
	"Experienced in running successful influencer marketing campaigns.",
	"Dedicated to producing high-quality content for brands and audiences.",
}

const sponsorRequirements = "Looking for authentic creators to collaborate with our brand."
