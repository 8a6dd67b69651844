package commands

import "fmt"

func makeCommand() *Command {
	return &Command{
		Name:   "make",
		Params: []string{"recipe"},
		Help: `Use: "make <item name>"

If the ingredient and tool requirements are met for the recipe of the named item, then deducts the ingredients from the user's inventory and adds the recipe's result items to the user's inventory. Tools are kept.

Example:

> make hat

< player lose leather

< player receive hat`,
		Run: func(e *Exec, params []string) error {
			recipeId := params[0]
			recipe := e.World.Catalog.Recipes.Get(recipeId)
			if recipe == nil {
				return NewUserError("%s isn't a recipe.", recipeId)
			}
			if !e.Actor.Items.Satisfies(recipe.Tools) {
				return NewUserError("You don't have all of the tools.")
			}
			if !e.Actor.Items.Satisfies(recipe.Ingredients) {
				return NewUserError("You don't have all of the ingredients")
			}

			for _, itemId := range keys(recipe.Ingredients) {
				n := recipe.Ingredients[itemId]
				e.Actor.Items.Decrement(itemId, n)
				e.Actor.Inform(fmt.Sprintf("%d %s(s) removed from inventory.", n, itemId))
			}
			for _, itemId := range keys(recipe.Results) {
				n := recipe.Results[itemId]
				e.Actor.Items.Increment(itemId, n)
				e.Actor.Inform(fmt.Sprintf("You created %d %s(s).", n, itemId))
			}

			announce(e, "make", recipeId)
			return nil
		},
	}
}
