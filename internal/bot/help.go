package bot

const startText = `Hi! I keep track of your group's chores.

Add a todo and I assign it to a random member of this chat. Recurring
todos come back after their interval; one-time todos disappear a day
after they are done.

Send /help for the full command list.`

const helpText = `Commands:

/add buy milk
    Add a one-time todo, assigned to a random chat member.

/add every 7 days: take out trash
    Add a recurring todo (interval 1-999 days).

/todos
    List all todos, plus everyone's todos for today.

/check 1
    Mark the first listed todo as done (send again to undo).

/delete 1
    Delete the first listed todo.

Anyone who has written in the chat can be assigned todos.`
