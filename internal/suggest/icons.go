// Package suggest picks an icon and color for a record from its title.
// Matching is keyword based: exact title, then substring, then per word.
package suggest

import (
	"sort"
	"strings"

	"github.com/sandeepkv93/focald/internal/model"
)

type Mapping struct {
	Icon  string
	Label string
	Color string
}

var mappings = map[string]Mapping{
	// Fitness
	"gym":        {Icon: "🏋️", Label: "Gym", Color: "sage"},
	"workout":    {Icon: "🏋️", Label: "Workout", Color: "sage"},
	"exercise":   {Icon: "🏃", Label: "Exercise", Color: "sage"},
	"run":        {Icon: "🏃", Label: "Run", Color: "sage"},
	"running":    {Icon: "🏃", Label: "Running", Color: "sage"},
	"jog":        {Icon: "🏃", Label: "Jog", Color: "sage"},
	"yoga":       {Icon: "🧘", Label: "Yoga", Color: "lavender"},
	"meditation": {Icon: "🧘", Label: "Meditation", Color: "lavender"},
	"meditate":   {Icon: "🧘", Label: "Meditate", Color: "lavender"},
	"swim":       {Icon: "🏊", Label: "Swim", Color: "sky"},
	"swimming":   {Icon: "🏊", Label: "Swimming", Color: "sky"},
	"bike":       {Icon: "🚴", Label: "Bike", Color: "sage"},
	"cycling":    {Icon: "🚴", Label: "Cycling", Color: "sage"},
	"walk":       {Icon: "🚶", Label: "Walk", Color: "sage"},
	"stretch":    {Icon: "🤸", Label: "Stretch", Color: "lavender"},

	// Work
	"meeting":      {Icon: "👥", Label: "Meeting", Color: "sky"},
	"call":         {Icon: "📞", Label: "Call", Color: "sky"},
	"phone":        {Icon: "📞", Label: "Phone", Color: "sky"},
	"work":         {Icon: "💼", Label: "Work", Color: "sky"},
	"email":        {Icon: "📧", Label: "Email", Color: "sky"},
	"office":       {Icon: "🏢", Label: "Office", Color: "sky"},
	"presentation": {Icon: "📊", Label: "Presentation", Color: "sky"},
	"project":      {Icon: "📁", Label: "Project", Color: "sky"},
	"deadline":     {Icon: "⏰", Label: "Deadline", Color: "coral"},
	"interview":    {Icon: "🤝", Label: "Interview", Color: "sky"},

	// Food
	"breakfast": {Icon: "🍳", Label: "Breakfast", Color: "amber"},
	"lunch":     {Icon: "🍽️", Label: "Lunch", Color: "amber"},
	"dinner":    {Icon: "🍽️", Label: "Dinner", Color: "amber"},
	"coffee":    {Icon: "☕", Label: "Coffee", Color: "amber"},
	"tea":       {Icon: "🍵", Label: "Tea", Color: "amber"},
	"cook":      {Icon: "👨‍🍳", Label: "Cook", Color: "amber"},
	"cooking":   {Icon: "👨‍🍳", Label: "Cooking", Color: "amber"},
	"meal":      {Icon: "🍽️", Label: "Meal", Color: "amber"},
	"snack":     {Icon: "🍎", Label: "Snack", Color: "amber"},
	"eat":       {Icon: "🍽️", Label: "Eat", Color: "amber"},

	// Study
	"study":    {Icon: "📚", Label: "Study", Color: "lavender"},
	"read":     {Icon: "📖", Label: "Read", Color: "lavender"},
	"reading":  {Icon: "📖", Label: "Reading", Color: "lavender"},
	"learn":    {Icon: "🎓", Label: "Learn", Color: "lavender"},
	"learning": {Icon: "🎓", Label: "Learning", Color: "lavender"},
	"homework": {Icon: "📝", Label: "Homework", Color: "lavender"},
	"class":    {Icon: "🎓", Label: "Class", Color: "lavender"},
	"lecture":  {Icon: "🎓", Label: "Lecture", Color: "lavender"},
	"exam":     {Icon: "📝", Label: "Exam", Color: "coral"},
	"test":     {Icon: "📝", Label: "Test", Color: "coral"},

	// Sleep and morning
	"sleep":   {Icon: "😴", Label: "Sleep", Color: "night"},
	"wake":    {Icon: "☀️", Label: "Wake", Color: "coral"},
	"wakeup":  {Icon: "☀️", Label: "Wake Up", Color: "coral"},
	"morning": {Icon: "🌅", Label: "Morning", Color: "coral"},
	"night":   {Icon: "🌙", Label: "Night", Color: "night"},
	"bedtime": {Icon: "🌙", Label: "Bedtime", Color: "night"},
	"nap":     {Icon: "💤", Label: "Nap", Color: "lavender"},
	"rest":    {Icon: "🛋️", Label: "Rest", Color: "lavender"},

	// Chores
	"clean":    {Icon: "🧹", Label: "Clean", Color: "amber"},
	"cleaning": {Icon: "🧹", Label: "Cleaning", Color: "amber"},
	"laundry":  {Icon: "👕", Label: "Laundry", Color: "amber"},
	"dishes":   {Icon: "🍽️", Label: "Dishes", Color: "amber"},
	"vacuum":   {Icon: "🧹", Label: "Vacuum", Color: "amber"},
	"organize": {Icon: "📦", Label: "Organize", Color: "amber"},
	"tidy":     {Icon: "🧹", Label: "Tidy", Color: "amber"},

	// Shopping
	"shopping":  {Icon: "🛍️", Label: "Shopping", Color: "rose"},
	"shop":      {Icon: "🛍️", Label: "Shop", Color: "rose"},
	"grocery":   {Icon: "🛒", Label: "Grocery", Color: "amber"},
	"groceries": {Icon: "🛒", Label: "Groceries", Color: "amber"},
	"buy":       {Icon: "🛍️", Label: "Buy", Color: "rose"},

	// Social
	"friends":   {Icon: "👯", Label: "Friends", Color: "rose"},
	"party":     {Icon: "🎉", Label: "Party", Color: "rose"},
	"date":      {Icon: "❤️", Label: "Date", Color: "rose"},
	"hangout":   {Icon: "👯", Label: "Hangout", Color: "rose"},
	"family":    {Icon: "👨‍👩‍👧‍👦", Label: "Family", Color: "rose"},
	"birthday":  {Icon: "🎂", Label: "Birthday", Color: "rose"},
	"celebrate": {Icon: "🎉", Label: "Celebrate", Color: "rose"},

	// Creative
	"write":    {Icon: "✍️", Label: "Write", Color: "lavender"},
	"writing":  {Icon: "✍️", Label: "Writing", Color: "lavender"},
	"draw":     {Icon: "🎨", Label: "Draw", Color: "lavender"},
	"drawing":  {Icon: "🎨", Label: "Drawing", Color: "lavender"},
	"paint":    {Icon: "🎨", Label: "Paint", Color: "lavender"},
	"music":    {Icon: "🎵", Label: "Music", Color: "lavender"},
	"practice": {Icon: "🎸", Label: "Practice", Color: "lavender"},
	"guitar":   {Icon: "🎸", Label: "Guitar", Color: "lavender"},
	"piano":    {Icon: "🎹", Label: "Piano", Color: "lavender"},
	"code":     {Icon: "💻", Label: "Code", Color: "sky"},
	"coding":   {Icon: "💻", Label: "Coding", Color: "sky"},
	"design":   {Icon: "🎨", Label: "Design", Color: "lavender"},

	// Travel
	"travel":  {Icon: "✈️", Label: "Travel", Color: "sky"},
	"flight":  {Icon: "✈️", Label: "Flight", Color: "sky"},
	"drive":   {Icon: "🚗", Label: "Drive", Color: "sky"},
	"commute": {Icon: "🚗", Label: "Commute", Color: "slate"},
	"train":   {Icon: "🚆", Label: "Train", Color: "sky"},
	"bus":     {Icon: "🚌", Label: "Bus", Color: "sky"},

	// Health
	"doctor":      {Icon: "🏥", Label: "Doctor", Color: "coral"},
	"dentist":     {Icon: "🦷", Label: "Dentist", Color: "coral"},
	"therapy":     {Icon: "💭", Label: "Therapy", Color: "lavender"},
	"medicine":    {Icon: "💊", Label: "Medicine", Color: "coral"},
	"appointment": {Icon: "📅", Label: "Appointment", Color: "sky"},

	// Entertainment
	"movie":   {Icon: "🎬", Label: "Movie", Color: "rose"},
	"tv":      {Icon: "📺", Label: "TV", Color: "slate"},
	"game":    {Icon: "🎮", Label: "Game", Color: "rose"},
	"gaming":  {Icon: "🎮", Label: "Gaming", Color: "rose"},
	"podcast": {Icon: "🎧", Label: "Podcast", Color: "lavender"},

	// Self-care
	"shower":     {Icon: "🚿", Label: "Shower", Color: "sky"},
	"skincare":   {Icon: "🧴", Label: "Skincare", Color: "rose"},
	"relax":      {Icon: "🧘", Label: "Relax", Color: "lavender"},
	"journal":    {Icon: "📓", Label: "Journal", Color: "lavender"},
	"journaling": {Icon: "📓", Label: "Journaling", Color: "lavender"},
}

// sortedKeywords fixes the substring scan order: longest keyword first so
// "cooking" wins over "cook", then lexical for a stable tie-break.
var sortedKeywords = func() []string {
	out := make([]string, 0, len(mappings))
	for k := range mappings {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

func Find(title string) (Mapping, bool) {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return Mapping{}, false
	}

	if exact, ok := mappings[lower]; ok {
		return exact, true
	}

	for _, keyword := range sortedKeywords {
		if strings.Contains(lower, keyword) {
			return mappings[keyword], true
		}
	}

	for _, word := range strings.Fields(lower) {
		if m, ok := mappings[word]; ok {
			return m, true
		}
	}

	return Mapping{}, false
}

func Icon(title string) string {
	if m, ok := Find(title); ok {
		return m.Icon
	}
	return model.DefaultIcon
}

func Color(title string) string {
	if m, ok := Find(title); ok {
		return m.Color
	}
	return model.DefaultColor
}
