package welstory

import "welboard/internal/menu"

// mealResponse is the wire shape of GET /api/meal.
type mealResponse struct {
	Data struct {
		MealList []wireMeal `json:"mealList"`
	} `json:"data"`
}

// wireMeal is one raw meal record as the API serves it.
type wireMeal struct {
	CourseTxt      string `json:"courseTxt"`
	MenuName       string `json:"menuName"`
	Kcal           string `json:"kcal"`
	SubMenuTxt     string `json:"subMenuTxt"`
	PhotoURL       string `json:"photoUrl"`
	PhotoCd        string `json:"photoCd"`
	HallNo         string `json:"hallNo"`
	MenuCourseType string `json:"menuCourseType"`
	MenuMealType   string `json:"menuMealType"`
}

func (w wireMeal) toRawMeal() menu.RawMeal {
	return menu.RawMeal{
		Course:    w.CourseTxt,
		Name:      w.MenuName,
		Kcal:      w.Kcal,
		SubMenu:   w.SubMenuTxt,
		PhotoURL:  w.PhotoURL,
		PhotoCode: w.PhotoCd,
		RatingKey: menu.RatingKey{
			HallNo:     w.HallNo,
			CourseType: w.MenuCourseType,
			MealType:   w.MenuMealType,
		},
	}
}

// ratingResponse is the wire shape of GET /api/meal/getMenuEvalAvg.
type ratingResponse struct {
	Data struct {
		GradeAvg float64 `json:"gradeAvg"`
		Total    int     `json:"total"`
	} `json:"data"`
}
